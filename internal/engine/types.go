package engine

import "strings"

// RefPrefix is the namespace under which the synchronizer persists one ref
// per mapped branch. The ref name layout refs/ptt/<branchName> is the only
// on-disk contract that carries meaning across invocations.
const RefPrefix = "refs/ptt/"

// Built-in configuration defaults, lowest priority in the resolution order.
const (
	DefaultBase       = "master"
	DefaultMarker     = "@"
	DefaultShortIDLen = 10
)

// ConfigSection is the repository-wide git config section read by the
// config resolver. Branch-scoped settings live in `ptt "<branch>"`.
const ConfigSection = "ptt"

// Commit is a read-only view of a single commit as the engine needs it:
// hash, first line onward of the message, and parent hashes. Only the first
// parent is ever traversed.
type Commit struct {
	Hash    string
	Parents []string
	Message string
}

// Subject returns the first line of the commit message.
func (c *Commit) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return strings.TrimSpace(subject)
}

// ShortID returns the hash truncated to n characters.
func (c *Commit) ShortID(n int) string {
	if n > 0 && n < len(c.Hash) {
		return c.Hash[:n]
	}
	return c.Hash
}

// MappedBranch is a named, contiguous run of commits sealed by a marker
// commit at its head. Commits are ordered newest-first; Head is always
// Commits[0]. Mapped branches are recomputed from scratch on every
// invocation and never persisted directly; only the head survives, via
// the refs/ptt/ namespace.
type MappedBranch struct {
	Name    string
	Head    *Commit
	Commits []*Commit
}

// EffectiveConfig is the configuration for one invocation, built once by
// ResolveConfig and immutable afterward.
type EffectiveConfig struct {
	MarkerPrefix string
	BaseRevision string
	RemoteName   string // empty when no remote is configured
	ShortIDLen   int
}

// Overrides carries explicit settings (typically CLI flags) that take
// priority over every configuration layer. Zero values mean "not set".
type Overrides struct {
	Base       string
	Remote     string
	Marker     string
	ShortIDLen int
}

// BranchSet is the ordered result of one segmentation run: mapped branches
// keyed by name, preserving tip-to-base discovery order. Inserting an
// existing name overwrites the value but keeps the original position, so
// duplicate markers within one range are last-write-wins without
// reshuffling the stack order.
type BranchSet struct {
	names  []string
	byName map[string]*MappedBranch
}

// NewBranchSet returns an empty branch set.
func NewBranchSet() *BranchSet {
	return &BranchSet{byName: make(map[string]*MappedBranch)}
}

// Add inserts or overwrites a mapped branch.
func (s *BranchSet) Add(branch *MappedBranch) {
	if _, ok := s.byName[branch.Name]; !ok {
		s.names = append(s.names, branch.Name)
	}
	s.byName[branch.Name] = branch
}

// Get returns the mapped branch with the given name.
func (s *BranchSet) Get(name string) (*MappedBranch, bool) {
	branch, ok := s.byName[name]
	return branch, ok
}

// Contains reports whether a mapped branch with the given name exists.
func (s *BranchSet) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Names returns the branch names in discovery order.
func (s *BranchSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// All returns the mapped branches in discovery order.
func (s *BranchSet) All() []*MappedBranch {
	branches := make([]*MappedBranch, 0, len(s.names))
	for _, name := range s.names {
		branches = append(branches, s.byName[name])
	}
	return branches
}

// Len returns the number of mapped branches.
func (s *BranchSet) Len() int {
	return len(s.names)
}

// SyncResult reports the ref mutations performed by one synchronizer run.
// An unchanged mapping yields an empty result on the second run.
type SyncResult struct {
	Created []string
	Updated []string
	Deleted []string
}

// Mutations returns the total number of ref mutations.
func (r SyncResult) Mutations() int {
	return len(r.Created) + len(r.Updated) + len(r.Deleted)
}

// DiffStat aggregates numstat output for one diff: added and deleted line
// counts and the number of files touched.
type DiffStat struct {
	Added   int
	Deleted int
	Files   int
}

// Delta returns the net line count change.
func (d DiffStat) Delta() int {
	return d.Added - d.Deleted
}

// BranchStats is one row of the stats report: the per-increment diff of a
// mapped branch against the next branch in the stack.
type BranchStats struct {
	Name string
	DiffStat
}

// BranchStatus reports local versus remote state for one mapped branch.
// RemoteHead is empty when the remote branch does not exist; that is an
// expected absence, not an error.
type BranchStatus struct {
	Name       string
	LocalHead  string
	RemoteHead string
	InSync     bool
}
