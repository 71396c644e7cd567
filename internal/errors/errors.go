// Package errors provides sentinel errors and custom error types for the git-ptt application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoRemote indicates that no remote is configured for the repository
	ErrNoRemote = errors.New("no remote configured")

	// ErrRemoteNotFound indicates that the configured remote does not exist
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrBranchNotFound indicates that a mapped branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a local branch already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrBaseNotReachable indicates that the base revision is not an ancestor
	// of the tip along the first-parent chain
	ErrBaseNotReachable = errors.New("base not reachable")

	// ErrBranchNotMerged indicates that a branch deletion was refused because
	// the branch is not fully merged
	ErrBranchNotMerged = errors.New("branch not fully merged")
)

// BranchNotFoundError represents an error when a mapped branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("no mapped branch named %s", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a local branch already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("local branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// BaseNotReachableError represents an error when the segmenter walks off the
// root of history before reaching the configured base revision
type BaseNotReachableError struct {
	Base string
	Tip  string
}

func (e *BaseNotReachableError) Error() string {
	return fmt.Sprintf("base %s is not reachable from %s along the first-parent chain", e.Base, e.Tip)
}

// Is returns true if the target error is ErrBaseNotReachable
func (e *BaseNotReachableError) Is(target error) bool {
	return target == ErrBaseNotReachable
}

// NewBaseNotReachableError creates a new BaseNotReachableError
func NewBaseNotReachableError(base, tip string) *BaseNotReachableError {
	return &BaseNotReachableError{Base: base, Tip: tip}
}

// ConfigurationError represents an invalid effective configuration, for
// example an unresolvable base revision
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Key, e.Message)
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(key, message string) *ConfigurationError {
	return &ConfigurationError{Key: key, Message: message}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
