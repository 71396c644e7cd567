package engine

import (
	"context"
	"fmt"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// Branch metadata key naming the stack branch a mapped branch rebases onto.
const configKeyStack = "stack"

// CreateLocalBranch creates a local branch at a mapped branch's head. When a
// stack hint is given it is persisted in the branch's metadata section so a
// later restack can default to it.
func (e *Engine) CreateLocalBranch(name, stackHint string) error {
	branch, err := e.Branch(name)
	if err != nil {
		return err
	}

	if _, exists, err := e.backend.LocalBranchHead(name); err != nil {
		return err
	} else if exists {
		return ptterrors.NewBranchExistsError(name)
	}

	e.logger.Info("creating branch", "name", name, "sha", e.ShortID(branch.Head.Hash))
	if err := e.backend.CreateBranch(name, branch.Head.Hash); err != nil {
		return err
	}

	if stackHint != "" {
		e.logger.Debug("recording stack hint", "name", name, "stack", stackHint)
		if err := e.backend.SetConfig(ConfigSection, name, configKeyStack, stackHint); err != nil {
			return err
		}
	}
	return nil
}

// ForceUpdateLocalBranch moves an existing local branch to the mapped head.
func (e *Engine) ForceUpdateLocalBranch(name string) error {
	branch, err := e.Branch(name)
	if err != nil {
		return err
	}

	if _, exists, err := e.backend.LocalBranchHead(name); err != nil {
		return err
	} else if !exists {
		return ptterrors.NewBranchNotFoundError(name)
	}

	e.logger.Info("updating branch", "name", name, "sha", e.ShortID(branch.Head.Hash))
	return e.backend.ResetBranchRef(name, branch.Head.Hash)
}

// DeleteLocalBranch removes a local branch and its metadata section.
// Without force, branches the backend reports as not fully merged are
// refused.
func (e *Engine) DeleteLocalBranch(ctx context.Context, name string, force bool) error {
	if _, exists, err := e.backend.LocalBranchHead(name); err != nil {
		return err
	} else if !exists {
		return ptterrors.NewBranchNotFoundError(name)
	}

	if !force {
		merged, err := e.backend.IsMerged(ctx, name, "HEAD")
		if err != nil {
			return err
		}
		if !merged {
			return fmt.Errorf("%w: %s", ptterrors.ErrBranchNotMerged, name)
		}
	}

	if err := e.backend.DeleteConfigSection(ConfigSection, name); err != nil {
		return err
	}

	e.logger.Info("deleting branch", "name", name)
	return e.backend.DeleteBranch(ctx, name, true)
}

// PruneLocalBranch deletes the local branch matching a mapped branch.
// A local branch whose tip has drifted from the mapped head is skipped
// unless force is set. Returns whether the branch was deleted.
func (e *Engine) PruneLocalBranch(ctx context.Context, name string, force bool) (bool, error) {
	branch, err := e.Branch(name)
	if err != nil {
		return false, err
	}

	localHead, exists, err := e.backend.LocalBranchHead(name)
	if err != nil {
		return false, err
	}
	if !exists {
		e.logger.Debug("skipping branch (does not exist)", "name", name)
		return false, nil
	}

	if localHead != branch.Head.Hash {
		if !force {
			e.logger.Warn("skipping branch (not in sync)", "name", name)
			return false, nil
		}
		e.logger.Warn("deleting branch (not in sync)", "name", name)
	} else {
		e.logger.Info("deleting branch", "name", name)
	}

	if err := e.backend.DeleteConfigSection(ConfigSection, name); err != nil {
		return false, err
	}
	if err := e.backend.DeleteBranch(ctx, name, true); err != nil {
		return false, err
	}
	return true, nil
}

// Checkout switches to the local branch for a mapped branch, creating it at
// the mapped head when absent. When the existing local tip differs from the
// mapped head the checkout proceeds with a warning, unless force is set, in
// which case the branch is first reset to the mapped head.
func (e *Engine) Checkout(ctx context.Context, name string, force bool) error {
	branch, err := e.Branch(name)
	if err != nil {
		return err
	}

	localHead, exists, err := e.backend.LocalBranchHead(name)
	if err != nil {
		return err
	}

	if !exists {
		e.logger.Info("creating branch", "name", name, "sha", e.ShortID(branch.Head.Hash))
		if err := e.backend.CreateBranch(name, branch.Head.Hash); err != nil {
			return err
		}
		return e.backend.CheckoutBranch(ctx, name)
	}

	if localHead != branch.Head.Hash {
		if force {
			e.logger.Info("resetting branch to mapped head", "name", name, "sha", e.ShortID(branch.Head.Hash))
			if err := e.backend.ResetBranchRef(name, branch.Head.Hash); err != nil {
				return err
			}
		} else {
			e.logger.Warn("local branch is not at the mapped head",
				"name", name, "local", e.ShortID(localHead), "mapped", e.ShortID(branch.Head.Hash))
		}
	}

	return e.backend.CheckoutBranch(ctx, name)
}

// Push force-pushes a mapped branch's head to the configured remote.
// Rewritten history is the normal case for a restacked increment.
func (e *Engine) Push(ctx context.Context, name string) error {
	branch, err := e.Branch(name)
	if err != nil {
		return err
	}
	remote, err := e.Remote()
	if err != nil {
		return err
	}

	e.logger.Info("pushing commit", "sha", e.ShortID(branch.Head.Hash), "remote", remote, "branch", name)
	return e.backend.PushCommit(ctx, remote, branch.Head.Hash, name)
}

// DeleteRemote deletes a mapped branch from the remote with a
// compare-and-swap guard.
func (e *Engine) DeleteRemote(ctx context.Context, name string) error {
	branch, err := e.Branch(name)
	if err != nil {
		return err
	}
	remote, err := e.Remote()
	if err != nil {
		return err
	}

	e.logger.Info("deleting remote branch", "remote", remote, "branch", branch.Name)
	return e.backend.DeleteRemoteBranch(ctx, remote, branch.Name)
}

// StatusAll reports local versus remote state for every mapped branch after
// a single remote round trip. An absent remote branch is reported with an
// empty RemoteHead, not an error.
func (e *Engine) StatusAll(ctx context.Context) ([]BranchStatus, error) {
	remote, err := e.Remote()
	if err != nil {
		return nil, err
	}

	heads, err := e.backend.RemoteHeads(ctx, remote)
	if err != nil {
		return nil, err
	}

	statuses := make([]BranchStatus, 0, e.branches.Len())
	for _, branch := range e.branches.All() {
		remoteHead := heads[branch.Name]
		statuses = append(statuses, BranchStatus{
			Name:       branch.Name,
			LocalHead:  branch.Head.Hash,
			RemoteHead: remoteHead,
			InSync:     remoteHead == branch.Head.Hash,
		})
	}
	return statuses, nil
}

// Restack replays a mapped branch's own commit range onto newBase, anchored
// at the branch's current head. When newBase is empty the branch's recorded
// stack hint is used. A local branch still at the old head is moved to the
// rewritten head. Returns the new head.
func (e *Engine) Restack(ctx context.Context, name, newBase string) (string, error) {
	branch, err := e.Branch(name)
	if err != nil {
		return "", err
	}

	if newBase == "" {
		scoped, err := e.backend.ConfigSection(ConfigSection, name)
		if err != nil {
			return "", err
		}
		newBase = scoped[configKeyStack]
		if newBase == "" {
			return "", ptterrors.NewConfigurationError(configKeyStack,
				fmt.Sprintf("no stack recorded for %s and no base given", name))
		}
	}

	oldest := branch.Commits[len(branch.Commits)-1]
	if len(oldest.Parents) == 0 {
		return "", fmt.Errorf("cannot restack %s: commit %s has no parent", name, oldest.Hash)
	}

	e.logger.Info("restacking branch", "name", name,
		"range", fmt.Sprintf("%s..%s", e.ShortID(oldest.Parents[0]), e.ShortID(branch.Head.Hash)),
		"onto", newBase)
	newHead, err := e.backend.RebaseOnto(ctx, newBase, oldest.Parents[0], branch.Head.Hash)
	if err != nil {
		return "", err
	}

	if localHead, exists, err := e.backend.LocalBranchHead(name); err != nil {
		return "", err
	} else if exists && localHead == branch.Head.Hash {
		if err := e.backend.ResetBranchRef(name, newHead); err != nil {
			return "", err
		}
	}

	return newHead, nil
}
