// Package engine implements the core of git-ptt: resolving the effective
// configuration, partitioning first-parent commit history into named mapped
// branches from embedded markers, keeping the refs/ptt/ namespace in sync
// with the computed mapping, and orchestrating branch operations on top of it.
//
// The engine is pure orchestration: all repository access goes through the
// Backend interface, implemented for real repositories by internal/git.
package engine
