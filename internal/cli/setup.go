package cli

import (
	"os"
	"path/filepath"

	"ptt.dev/ptt/internal/engine"
	"ptt.dev/ptt/internal/git"
	"ptt.dev/ptt/internal/output"
)

// rootOptions holds the persistent flag values shared by every command.
type rootOptions struct {
	verbosity  int
	repoPath   string
	base       string
	remote     string
	marker     string
	shortIDLen int
	logFile    bool
}

// runtime bundles everything a command needs once the repository is open:
// the git backend, the engine with a fresh mapping, and the logger.
type runtime struct {
	Backend *git.Backend
	Engine  *engine.Engine
	Splog   *output.Splog
}

// Close releases runtime resources.
func (r *runtime) Close() {
	if r.Splog != nil {
		_ = r.Splog.Close()
	}
}

// newRuntime opens the repository, resolves configuration, builds the engine
// and synchronizes the refs/ptt namespace with the freshly computed mapping.
// Every repository-facing command starts here, so the persisted refs always
// reflect the current history before the command does its own work.
func newRuntime(opts *rootOptions) (*runtime, error) {
	splog, err := newSplog(opts)
	if err != nil {
		return nil, err
	}

	backend, err := git.Open(opts.repoPath)
	if err != nil {
		splog.Close()
		return nil, err
	}

	config, err := engine.ResolveConfig(backend, engine.Overrides{
		Base:       opts.base,
		Remote:     opts.remote,
		Marker:     opts.marker,
		ShortIDLen: opts.shortIDLen,
	})
	if err != nil {
		splog.Close()
		return nil, err
	}

	eng, err := engine.New(backend, config, splog.Logger())
	if err != nil {
		splog.Close()
		return nil, err
	}

	result, err := eng.Sync()
	if err != nil {
		splog.Close()
		return nil, err
	}
	if result.Mutations() > 0 {
		splog.Debug("synchronized refs: %d created, %d updated, %d deleted",
			len(result.Created), len(result.Updated), len(result.Deleted))
	}

	return &runtime{Backend: backend, Engine: eng, Splog: splog}, nil
}

func newSplog(opts *rootOptions) (*output.Splog, error) {
	if !opts.logFile {
		return output.NewSplog(opts.verbosity), nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return output.NewSplogWithLogFile(opts.verbosity, filepath.Join(cacheDir, "git-ptt", "git-ptt.log"))
}

// resolveBranchArgs expands command arguments into mapped branch names: no
// arguments means every mapped branch, in discovery order.
func resolveBranchArgs(eng *engine.Engine, args []string) ([]string, error) {
	if len(args) == 0 {
		return eng.Branches().Names(), nil
	}
	for _, name := range args {
		if _, err := eng.Branch(name); err != nil {
			return nil, err
		}
	}
	return args, nil
}
