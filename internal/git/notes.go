package git

import (
	"context"
	"errors"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// ReadNote returns the note attached to a commit. A commit without a note
// yields an empty string; "no note found" is the one backend failure that is
// an expected absence rather than an error. go-git has no notes support, so
// this shells out.
func (b *Backend) ReadNote(sha string) (string, error) {
	note, err := b.runner.Run(context.Background(), "notes", "show", sha)
	if err != nil {
		var cmdErr *ptterrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return "", nil
		}
		return "", err
	}
	return note, nil
}
