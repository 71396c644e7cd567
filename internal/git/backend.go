package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
)

// Backend implements engine.Backend for a repository on disk.
type Backend struct {
	repo   *gogit.Repository
	runner *CommandRunner
	path   string
	config *gogitconfig.Config // primed scoped config, see gitconfig.go
}

// Open discovers and opens the repository containing path (or the working
// directory when path is empty).
func Open(path string) (*Backend, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	root := absPath
	if worktree, err := repo.Worktree(); err == nil {
		root = worktree.Filesystem.Root()
	}

	return &Backend{
		repo:   repo,
		runner: NewCommandRunner(root),
		path:   root,
	}, nil
}

// Root returns the repository's root directory.
func (b *Backend) Root() string {
	return b.path
}
