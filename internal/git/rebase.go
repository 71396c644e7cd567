package git

import (
	"context"
	"fmt"
)

// RebaseOnto replays the range upstream..pivot onto the given revision and
// returns the new head. The rebase runs on a detached HEAD so no local
// branch ref moves as a side effect; the original HEAD is restored
// afterward, and on failure the rebase is aborted before returning.
func (b *Backend) RebaseOnto(ctx context.Context, onto, upstream, pivot string) (string, error) {
	branch, onBranch, err := b.CurrentBranch()
	if err != nil {
		return "", err
	}
	var detachedRev string
	if !onBranch {
		if detachedRev, err = b.runner.Run(ctx, "rev-parse", "HEAD"); err != nil {
			return "", err
		}
	}

	restore := func() {
		if onBranch {
			_, _ = b.runner.Run(ctx, "checkout", branch)
		} else if detachedRev != "" {
			_, _ = b.runner.Run(ctx, "checkout", "--detach", detachedRev)
		}
	}

	if _, err := b.runner.Run(ctx, "rebase", "--onto", onto, upstream, pivot); err != nil {
		_, _ = b.runner.Run(ctx, "rebase", "--abort")
		restore()
		return "", fmt.Errorf("failed to rebase %s..%s onto %s: %w", upstream, pivot, onto, err)
	}

	newHead, err := b.runner.Run(ctx, "rev-parse", "HEAD")
	restore()
	if err != nil {
		return "", fmt.Errorf("failed to read rebased head: %w", err)
	}
	return newHead, nil
}
