package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// HasRemote reports whether a remote with the given name exists.
func (b *Backend) HasRemote(name string) (bool, error) {
	_, err := b.repo.Remote(name)
	if err != nil {
		if err == gogit.ErrRemoteNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up remote %s: %w", name, err)
	}
	return true, nil
}

// RemoteURL returns the first fetch URL configured for a remote.
func (b *Backend) RemoteURL(name string) (string, error) {
	remote, err := b.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to look up remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

// RemoteHeads returns the branch heads currently advertised by the remote,
// mapping branch name to hash. One network round trip for all branches.
func (b *Backend) RemoteHeads(ctx context.Context, remote string) (map[string]string, error) {
	lines, err := b.runner.RunLines(ctx, "ls-remote", "--heads", remote)
	if err != nil {
		return nil, err
	}

	heads := make(map[string]string)
	for _, line := range lines {
		sha, ref, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		name := strings.TrimPrefix(ref, "refs/heads/")
		if name == ref {
			continue
		}
		heads[name] = sha
	}
	return heads, nil
}

// PushCommit force-pushes a commit to refs/heads/<branchName> on the
// remote. The + refspec makes non-fast-forward updates succeed; rewritten
// history is the normal case for a restacked increment.
func (b *Backend) PushCommit(ctx context.Context, remote, sha, branchName string) error {
	refspec := fmt.Sprintf("+%s:refs/heads/%s", sha, branchName)
	if _, err := b.runner.Run(ctx, "push", remote, refspec); err != nil {
		return fmt.Errorf("failed to push %s to %s/%s: %w", sha, remote, branchName, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a remote branch. --force-with-lease guards the
// deletion against a remote that has moved since it was last observed, so a
// diverged remote is not silently destroyed.
func (b *Backend) DeleteRemoteBranch(ctx context.Context, remote, branchName string) error {
	refspec := fmt.Sprintf(":refs/heads/%s", branchName)
	if _, err := b.runner.Run(ctx, "push", "--force-with-lease", remote, refspec); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", remote, branchName, err)
	}
	return nil
}
