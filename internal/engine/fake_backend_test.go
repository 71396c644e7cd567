package engine_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ptt.dev/ptt/internal/engine"
)

// fakeBackend is an in-memory Backend for engine tests: a commit graph,
// refs, config and a fake remote, with mutation recording where tests need
// to assert on calls.
type fakeBackend struct {
	commits     map[string]*engine.Commit
	notes       map[string]string
	refs        map[string]string
	config      map[string]map[string]string
	branch      string // checked-out branch, "" means detached
	remotes     map[string]bool
	remoteHeads map[string]map[string]string
	revs        map[string]string
	merged      map[string]bool
	diffs       map[string]engine.DiffStat

	checkedOut      []string
	pushed          []string
	remoteDeleted   []string
	rebaseCalls     []string
	rebaseNewHead   string
	deletedBranches []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		commits:     make(map[string]*engine.Commit),
		notes:       make(map[string]string),
		refs:        make(map[string]string),
		config:      make(map[string]map[string]string),
		remotes:     make(map[string]bool),
		remoteHeads: make(map[string]map[string]string),
		revs:        make(map[string]string),
		merged:      make(map[string]bool),
		diffs:       make(map[string]engine.DiffStat),
	}
}

// addCommit records a commit with the given parents and returns its hash.
func (f *fakeBackend) addCommit(sha, message string, parents ...string) string {
	f.commits[sha] = &engine.Commit{Hash: sha, Parents: parents, Message: message}
	return sha
}

// chain builds a linear history on top of parent, one commit per message,
// and points HEAD at the last one. Hashes are sha-<message>.
func (f *fakeBackend) chain(parent string, messages ...string) string {
	for _, message := range messages {
		sha := "sha-" + strings.Fields(message)[0]
		if parent == "" {
			f.addCommit(sha, message)
		} else {
			f.addCommit(sha, message, parent)
		}
		parent = sha
	}
	f.revs["HEAD"] = parent
	return parent
}

func (f *fakeBackend) ResolveRevision(rev string) (string, error) {
	if sha, ok := f.revs[rev]; ok {
		return sha, nil
	}
	if _, ok := f.commits[rev]; ok {
		return rev, nil
	}
	return "", fmt.Errorf("unknown revision %s", rev)
}

func (f *fakeBackend) ReadCommit(sha string) (*engine.Commit, error) {
	commit, ok := f.commits[sha]
	if !ok {
		return nil, fmt.Errorf("unknown commit %s", sha)
	}
	return commit, nil
}

func (f *fakeBackend) ReadNote(sha string) (string, error) {
	return f.notes[sha], nil
}

func (f *fakeBackend) CurrentBranch() (string, bool, error) {
	return f.branch, f.branch != "", nil
}

func (f *fakeBackend) HasRemote(name string) (bool, error) {
	return f.remotes[name], nil
}

func configKey(section, subsection string) string {
	if subsection == "" {
		return section
	}
	return section + "." + subsection
}

func (f *fakeBackend) ConfigSection(section, subsection string) (map[string]string, error) {
	values := make(map[string]string)
	for key, value := range f.config[configKey(section, subsection)] {
		values[key] = value
	}
	return values, nil
}

func (f *fakeBackend) SetConfig(section, subsection, key, value string) error {
	name := configKey(section, subsection)
	if f.config[name] == nil {
		f.config[name] = make(map[string]string)
	}
	f.config[name][key] = value
	return nil
}

func (f *fakeBackend) DeleteConfigSection(section, subsection string) error {
	delete(f.config, configKey(section, subsection))
	return nil
}

func (f *fakeBackend) GetRef(name string) (string, bool, error) {
	sha, ok := f.refs[name]
	return sha, ok, nil
}

func (f *fakeBackend) UpdateRef(name, sha string) error {
	f.refs[name] = sha
	return nil
}

func (f *fakeBackend) DeleteRef(name string) error {
	delete(f.refs, name)
	return nil
}

func (f *fakeBackend) ListRefs(prefix string) (map[string]string, error) {
	matched := make(map[string]string)
	for name, sha := range f.refs {
		if strings.HasPrefix(name, prefix) {
			matched[name] = sha
		}
	}
	return matched, nil
}

func (f *fakeBackend) LocalBranchHead(name string) (string, bool, error) {
	sha, ok := f.refs["refs/heads/"+name]
	return sha, ok, nil
}

func (f *fakeBackend) CreateBranch(name, sha string) error {
	ref := "refs/heads/" + name
	if _, ok := f.refs[ref]; ok {
		return fmt.Errorf("branch %s already exists", name)
	}
	f.refs[ref] = sha
	return nil
}

func (f *fakeBackend) ResetBranchRef(name, sha string) error {
	f.refs["refs/heads/"+name] = sha
	return nil
}

func (f *fakeBackend) CheckoutBranch(_ context.Context, name string) error {
	f.checkedOut = append(f.checkedOut, name)
	f.branch = name
	return nil
}

func (f *fakeBackend) DeleteBranch(_ context.Context, name string, _ bool) error {
	delete(f.refs, "refs/heads/"+name)
	f.deletedBranches = append(f.deletedBranches, name)
	return nil
}

func (f *fakeBackend) IsMerged(_ context.Context, branch, _ string) (bool, error) {
	return f.merged[branch], nil
}

func (f *fakeBackend) RemoteHeads(_ context.Context, remote string) (map[string]string, error) {
	heads := make(map[string]string)
	for name, sha := range f.remoteHeads[remote] {
		heads[name] = sha
	}
	return heads, nil
}

func (f *fakeBackend) PushCommit(_ context.Context, remote, sha, branchName string) error {
	if f.remoteHeads[remote] == nil {
		f.remoteHeads[remote] = make(map[string]string)
	}
	f.remoteHeads[remote][branchName] = sha
	f.pushed = append(f.pushed, fmt.Sprintf("%s:%s=%s", remote, branchName, sha))
	return nil
}

func (f *fakeBackend) DeleteRemoteBranch(_ context.Context, remote, branchName string) error {
	delete(f.remoteHeads[remote], branchName)
	f.remoteDeleted = append(f.remoteDeleted, remote+":"+branchName)
	return nil
}

func (f *fakeBackend) RebaseOnto(_ context.Context, onto, upstream, pivot string) (string, error) {
	f.rebaseCalls = append(f.rebaseCalls, fmt.Sprintf("%s %s %s", onto, upstream, pivot))
	if f.rebaseNewHead == "" {
		return "", fmt.Errorf("rebase failed")
	}
	return f.rebaseNewHead, nil
}

func (f *fakeBackend) DiffNumstat(_ context.Context, from, to string) (engine.DiffStat, error) {
	return f.diffs[from+".."+to], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
