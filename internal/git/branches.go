package git

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// CurrentBranch returns the checked-out branch name. Detached HEAD is
// reported through the ok return, not as an error.
func (b *Backend) CurrentBranch() (string, bool, error) {
	head, err := b.repo.Head()
	if err != nil {
		return "", false, fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", false, nil
	}
	return head.Name().Short(), true, nil
}

// LocalBranchHead returns the head of a local branch, with ok=false when
// the branch does not exist.
func (b *Backend) LocalBranchHead(name string) (string, bool, error) {
	ref, err := b.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read branch %s: %w", name, err)
	}
	return ref.Hash().String(), true, nil
}

// CreateBranch creates a local branch at the given commit without checking
// it out.
func (b *Backend) CreateBranch(name, sha string) error {
	_, err := b.runner.Run(context.Background(), "branch", name, sha)
	return err
}

// ResetBranchRef moves an existing local branch ref without touching the
// worktree.
func (b *Backend) ResetBranchRef(name, sha string) error {
	_, err := b.runner.Run(context.Background(), "update-ref", "refs/heads/"+name, sha)
	return err
}

// CheckoutBranch checks out an existing local branch.
func (b *Backend) CheckoutBranch(ctx context.Context, name string) error {
	if _, err := b.runner.Run(ctx, "checkout", name); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a local branch. Without force, git itself refuses
// branches that are not fully merged.
func (b *Backend) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := b.runner.Run(ctx, "branch", flag, name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// IsMerged reports whether branch is an ancestor of target.
func (b *Backend) IsMerged(ctx context.Context, branch, target string) (bool, error) {
	_, err := b.runner.Run(ctx, "merge-base", "--is-ancestor", branch, target)
	if err != nil {
		// Exit status 1 means "not an ancestor".
		return false, nil
	}
	return true, nil
}
