package engine

import (
	"fmt"
	"log/slog"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// Segment partitions the first-parent chain from tip down to base into named
// mapped branches. The base commit is a pure boundary marker: it and its
// ancestors are never walked. Commits accumulate newest-first into a bundle
// that is sealed into a MappedBranch whenever the marker extractor names a
// commit; a trailing unsealed bundle is discarded. The result preserves
// tip-to-base discovery order.
//
// Segmentation is a pure function of history and configuration: it reads
// commits and notes only, and never touches the ref namespace.
func Segment(backend Backend, logger *slog.Logger, tip, base, markerPrefix string) (*BranchSet, error) {
	extractor, err := NewMarkerExtractor(backend, markerPrefix)
	if err != nil {
		return nil, err
	}

	tipSHA, err := backend.ResolveRevision(tip)
	if err != nil {
		return nil, ptterrors.NewConfigurationError("tip", fmt.Sprintf("cannot resolve %q: %v", tip, err))
	}
	baseSHA, err := backend.ResolveRevision(base)
	if err != nil {
		return nil, ptterrors.NewConfigurationError(configKeyBase, fmt.Sprintf("cannot resolve %q: %v", base, err))
	}

	branches := NewBranchSet()
	var bundle []*Commit

	cursor := tipSHA
	for cursor != baseSHA {
		commit, err := backend.ReadCommit(cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to read commit %s: %w", cursor, err)
		}
		logger.Debug("inspecting commit", "sha", commit.Hash)

		bundle = append(bundle, commit)
		name, ok, err := extractor.Extract(commit)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Debug("found branch", "name", name, "commits", len(bundle))
			branches.Add(&MappedBranch{
				Name:    name,
				Head:    bundle[0],
				Commits: bundle,
			})
			bundle = nil
		}

		if len(commit.Parents) == 0 {
			// Walked off the root without meeting base.
			return nil, ptterrors.NewBaseNotReachableError(base, tip)
		}
		cursor = commit.Parents[0]
	}

	if len(bundle) > 0 {
		logger.Debug("discarding unsealed trailing bundle", "commits", len(bundle))
	}

	return branches, nil
}
