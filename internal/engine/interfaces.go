package engine

import "context"

// Backend is the version-control capability set the engine consumes. The
// real implementation in internal/git combines go-git reads with git
// command execution; tests use an in-memory fake.
//
// All blocking operations that may touch the network or rewrite history
// take a context.
type Backend interface {
	// ResolveRevision resolves a revision expression to a full commit hash.
	ResolveRevision(rev string) (string, error)

	// ReadCommit reads a single commit. Only the first parent is ever
	// traversed by callers.
	ReadCommit(sha string) (*Commit, error)

	// ReadNote returns the note attached to a commit, or an empty string
	// when no note exists. A missing note is not an error.
	ReadNote(sha string) (string, error)

	// CurrentBranch returns the checked-out branch name. ok is false in
	// detached-HEAD state, which is not an error.
	CurrentBranch() (name string, ok bool, err error)

	// HasRemote reports whether a remote with the given name exists.
	HasRemote(name string) (bool, error)

	// ConfigSection reads one section of the layered git configuration.
	// subsection may be empty for the plain [section] form.
	ConfigSection(section, subsection string) (map[string]string, error)

	// SetConfig writes one key into the repository-local configuration.
	SetConfig(section, subsection, key, value string) error

	// DeleteConfigSection removes an entire section from the
	// repository-local configuration. Removing a missing section is a no-op.
	DeleteConfigSection(section, subsection string) error

	// GetRef reads a fully qualified ref. ok is false when the ref does
	// not exist.
	GetRef(name string) (sha string, ok bool, err error)

	// UpdateRef creates or force-updates a fully qualified ref. The update
	// is atomic per ref and may move to a non-descendant target.
	UpdateRef(name, sha string) error

	// DeleteRef removes a fully qualified ref.
	DeleteRef(name string) error

	// ListRefs enumerates refs under a prefix, mapping full ref name to hash.
	ListRefs(prefix string) (map[string]string, error)

	// LocalBranchHead returns the head of a local branch. ok is false when
	// the branch does not exist.
	LocalBranchHead(name string) (sha string, ok bool, err error)

	// CreateBranch creates a local branch at the given commit.
	CreateBranch(name, sha string) error

	// ResetBranchRef moves an existing local branch ref to the given commit
	// without touching the worktree.
	ResetBranchRef(name, sha string) error

	// CheckoutBranch checks out an existing local branch.
	CheckoutBranch(ctx context.Context, name string) error

	// DeleteBranch deletes a local branch. Without force the backend
	// refuses branches it considers not fully merged.
	DeleteBranch(ctx context.Context, name string, force bool) error

	// IsMerged reports whether branch is fully merged into target.
	IsMerged(ctx context.Context, branch, target string) (bool, error)

	// RemoteHeads returns the branch heads currently advertised by the
	// remote, mapping branch name to hash.
	RemoteHeads(ctx context.Context, remote string) (map[string]string, error)

	// PushCommit force-pushes a commit to refs/heads/<branchName> on the
	// remote. Non-fast-forward updates are expected and intentional.
	PushCommit(ctx context.Context, remote, sha, branchName string) error

	// DeleteRemoteBranch deletes a remote branch with a compare-and-swap
	// guard so a diverged remote is not silently destroyed.
	DeleteRemoteBranch(ctx context.Context, remote, branchName string) error

	// RebaseOnto replays the range upstream..pivot onto the given revision
	// and returns the new head of the replayed range.
	RebaseOnto(ctx context.Context, onto, upstream, pivot string) (string, error)

	// DiffNumstat diffs two revisions and aggregates added/deleted line
	// and file counts.
	DiffNumstat(ctx context.Context, from, to string) (DiffStat, error)
}
