package engine

import (
	"fmt"
	"log/slog"
	"strings"
)

// SyncRefs reconciles the refs/ptt/ namespace against a computed branch set.
// Afterward the namespace contains exactly one ref per mapped branch, each
// pointing at that branch's head.
//
// Two phases, write before purge, so a rename never transiently deletes a
// ref the write phase still needs to compare against. Each ref mutation is
// atomic but the sync as a whole is not transactional: a failure partway
// through leaves a partial update that the next run converges from, because
// an unchanged mapping produces zero mutations.
func SyncRefs(backend Backend, logger *slog.Logger, branches *BranchSet) (SyncResult, error) {
	var result SyncResult

	// Write phase: create or force-update one ref per mapped branch.
	for _, branch := range branches.All() {
		ref := RefPrefix + branch.Name

		current, ok, err := backend.GetRef(ref)
		if err != nil {
			return result, fmt.Errorf("failed to read ref %s: %w", ref, err)
		}

		switch {
		case ok && current == branch.Head.Hash:
			logger.Debug("ref up to date", "ref", ref, "sha", current)
		case ok:
			logger.Debug("updating ref", "ref", ref, "old", current, "new", branch.Head.Hash)
			if err := backend.UpdateRef(ref, branch.Head.Hash); err != nil {
				return result, fmt.Errorf("failed to update ref %s: %w", ref, err)
			}
			result.Updated = append(result.Updated, branch.Name)
		default:
			logger.Debug("creating ref", "ref", ref, "sha", branch.Head.Hash)
			if err := backend.UpdateRef(ref, branch.Head.Hash); err != nil {
				return result, fmt.Errorf("failed to create ref %s: %w", ref, err)
			}
			result.Created = append(result.Created, branch.Name)
		}
	}

	// Purge phase: delete refs whose branch name is no longer mapped.
	existing, err := backend.ListRefs(RefPrefix)
	if err != nil {
		return result, fmt.Errorf("failed to list refs under %s: %w", RefPrefix, err)
	}
	for ref := range existing {
		name := strings.TrimPrefix(ref, RefPrefix)
		if branches.Contains(name) {
			continue
		}
		logger.Debug("deleting stale ref", "ref", ref)
		if err := backend.DeleteRef(ref); err != nil {
			return result, fmt.Errorf("failed to delete ref %s: %w", ref, err)
		}
		result.Deleted = append(result.Deleted, name)
	}

	return result, nil
}
