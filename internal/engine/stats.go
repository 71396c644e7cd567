package engine

import (
	"context"
	"fmt"
)

// Stats reports added/deleted line and file counts for each mapped branch in
// discovery order, diffing every branch against the next one in the stack
// and the final entry against the configured base. This is the
// per-increment size of each logical branch.
func (e *Engine) Stats(ctx context.Context) ([]BranchStats, error) {
	branches := e.branches.All()
	if len(branches) == 0 {
		return nil, nil
	}

	baseSHA, err := e.backend.ResolveRevision(e.config.BaseRevision)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base %s: %w", e.config.BaseRevision, err)
	}

	stats := make([]BranchStats, 0, len(branches))
	for i, branch := range branches {
		from := baseSHA
		if i+1 < len(branches) {
			from = branches[i+1].Head.Hash
		}

		diff, err := e.backend.DiffNumstat(ctx, from, branch.Head.Hash)
		if err != nil {
			return nil, fmt.Errorf("failed to diff %s: %w", branch.Name, err)
		}
		stats = append(stats, BranchStats{Name: branch.Name, DiffStat: diff})
	}
	return stats, nil
}
