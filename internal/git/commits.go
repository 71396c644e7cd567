package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	"ptt.dev/ptt/internal/engine"
)

// ResolveRevision resolves a revision expression to a full commit hash.
func (b *Backend) ResolveRevision(rev string) (string, error) {
	hash, err := b.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}
	return hash.String(), nil
}

// ReadCommit reads a single commit's message and parent hashes.
func (b *Backend) ReadCommit(sha string) (*engine.Commit, error) {
	commit, err := b.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", sha, err)
	}

	parents := make([]string, 0, commit.NumParents())
	for _, parent := range commit.ParentHashes {
		parents = append(parents, parent.String())
	}

	return &engine.Commit{
		Hash:    commit.Hash.String(),
		Parents: parents,
		Message: commit.Message,
	}, nil
}
