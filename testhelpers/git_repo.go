// Package testhelpers builds real throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init'. The default branch is master, matching the default base
// revision, so most tests need no extra configuration.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "master")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
// GIT_CONFIG_GLOBAL=/dev/null keeps the developer's global config out of
// test behavior.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") != "" {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed
// output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Commit writes a file and commits it with the given message. Returns the
// new commit hash.
func (r *GitRepo) Commit(message string) (string, error) {
	fileName := fmt.Sprintf("%d.txt", r.commitCount())
	if err := os.WriteFile(filepath.Join(r.Dir, fileName), []byte(message+"\n"), 0644); err != nil {
		return "", err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return "", err
	}
	if err := r.RunGitCommand("commit", "-m", message); err != nil {
		return "", err
	}
	return r.Head()
}

// CommitWithMarker commits with a marker line appended to the message body,
// sealing the accumulated commits into a mapped branch of the given name.
func (r *GitRepo) CommitWithMarker(message, markerPrefix, branchName string) (string, error) {
	return r.Commit(fmt.Sprintf("%s\n\n%s%s", message, markerPrefix, branchName))
}

// CommitFile writes specific content to a named file and commits it.
func (r *GitRepo) CommitFile(fileName, content, message string) (string, error) {
	path := filepath.Join(r.Dir, fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return "", err
	}
	if err := r.RunGitCommand("commit", "-m", message); err != nil {
		return "", err
	}
	return r.Head()
}

// AddNote attaches a git note to a commit.
func (r *GitRepo) AddNote(sha, note string) error {
	return r.RunGitCommand("notes", "add", "-m", note, sha)
}

// Head returns the current HEAD hash.
func (r *GitRepo) Head() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "HEAD")
}

// RevParse resolves a revision to a hash.
func (r *GitRepo) RevParse(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// Ref returns the hash a fully qualified ref points at, or "" when the ref
// does not exist.
func (r *GitRepo) Ref(name string) string {
	sha, err := r.RunGitCommandAndGetOutput("rev-parse", "--verify", "--quiet", name)
	if err != nil {
		return ""
	}
	return sha
}

// SetConfig sets a local git config value.
func (r *GitRepo) SetConfig(key, value string) error {
	return r.RunGitCommand("config", "--local", key, value)
}

// CreateBareRemote creates a bare repository next to this one and registers
// it as a remote. Returns the bare repository path.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	barePath := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", barePath)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to init bare remote: %w", err)
	}

	if err := r.RunGitCommand("remote", "add", name, barePath); err != nil {
		return "", err
	}
	return barePath, nil
}

func (r *GitRepo) commitCount() int {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	var count int
	fmt.Sscanf(output, "%d", &count)
	return count
}
