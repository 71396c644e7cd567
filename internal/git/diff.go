package git

import (
	"context"
	"strconv"
	"strings"

	"ptt.dev/ptt/internal/engine"
)

// DiffNumstat diffs two revisions and aggregates added/deleted line and
// file counts. Binary files report "-" in numstat output and count as a
// file with zero line changes.
func (b *Backend) DiffNumstat(ctx context.Context, from, to string) (engine.DiffStat, error) {
	var stat engine.DiffStat

	lines, err := b.runner.RunLines(ctx, "diff", "--numstat", from, to)
	if err != nil {
		return stat, err
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if added, err := strconv.Atoi(fields[0]); err == nil {
			stat.Added += added
		}
		if deleted, err := strconv.Atoi(fields[1]); err == nil {
			stat.Deleted += deleted
		}
		stat.Files++
	}
	return stat, nil
}
