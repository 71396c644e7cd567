package engine

import (
	"log/slog"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// Engine ties the resolved configuration, the segmenter, the ref
// synchronizer, and the branch operations together for one invocation.
type Engine struct {
	backend  Backend
	config   EffectiveConfig
	logger   *slog.Logger
	branches *BranchSet
}

// New builds an engine and runs the initial segmentation from HEAD down to
// the configured base. Segmentation failures are fatal here, before any ref
// mutation can happen.
func New(backend Backend, config EffectiveConfig, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		backend: backend,
		config:  config,
		logger:  logger,
	}
	if err := e.Refresh(); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the effective configuration for this invocation.
func (e *Engine) Config() EffectiveConfig {
	return e.config
}

// Refresh recomputes the mapped branch set by re-walking history from HEAD.
func (e *Engine) Refresh() error {
	branches, err := Segment(e.backend, e.logger, "HEAD", e.config.BaseRevision, e.config.MarkerPrefix)
	if err != nil {
		return err
	}
	e.branches = branches
	return nil
}

// Branches returns the current mapped branch set in discovery order.
func (e *Engine) Branches() *BranchSet {
	return e.branches
}

// Branch returns a mapped branch by name.
func (e *Engine) Branch(name string) (*MappedBranch, error) {
	branch, ok := e.branches.Get(name)
	if !ok {
		return nil, ptterrors.NewBranchNotFoundError(name)
	}
	return branch, nil
}

// ShortID truncates a hash to the configured display length.
func (e *Engine) ShortID(sha string) string {
	if e.config.ShortIDLen > 0 && e.config.ShortIDLen < len(sha) {
		return sha[:e.config.ShortIDLen]
	}
	return sha
}

// Sync runs the ref synchronizer against the current mapped branch set.
func (e *Engine) Sync() (SyncResult, error) {
	return SyncRefs(e.backend, e.logger, e.branches)
}

// Remote validates and returns the configured remote name.
func (e *Engine) Remote() (string, error) {
	if e.config.RemoteName == "" {
		return "", ptterrors.ErrNoRemote
	}
	ok, err := e.backend.HasRemote(e.config.RemoteName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ptterrors.ErrRemoteNotFound
	}
	return e.config.RemoteName, nil
}
