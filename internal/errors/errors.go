// Package errors provides sentinel errors and custom error types for gitport.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrUnresolvedReference indicates that a revision string could not be
	// mapped to a commit
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrUnsafeWorkspace indicates that the working tree is dirty or the
	// repository is mid merge/rebase/cherry-pick
	ErrUnsafeWorkspace = errors.New("unsafe workspace")

	// ErrUnsupportedMergeCommit indicates that a merge commit was explicitly
	// requested without dependency resolution
	ErrUnsupportedMergeCommit = errors.New("unsupported merge commit")

	// ErrNoRepositories indicates that a repos config file listed nothing usable
	ErrNoRepositories = errors.New("no repositories to process")
)

// UnresolvedReferenceError represents a revision string that the repository
// could not resolve
type UnresolvedReferenceError struct {
	Ref string
	Err error
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("could not resolve %q to a commit", e.Ref)
}

// Is returns true if the target error is ErrUnresolvedReference
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return e.Err
}

// NewUnresolvedReferenceError creates a new UnresolvedReferenceError
func NewUnresolvedReferenceError(ref string, err error) *UnresolvedReferenceError {
	return &UnresolvedReferenceError{Ref: ref, Err: err}
}

// UnsafeWorkspaceError reports why the repository was not safe to mutate.
// InProgress is the kind of operation mid-flight ("merge", "rebase",
// "cherry-pick") or empty when the failure is a dirty working tree.
type UnsafeWorkspaceError struct {
	Uncommitted []string
	Untracked   []string
	InProgress  string
}

func (e *UnsafeWorkspaceError) Error() string {
	if e.InProgress != "" {
		return fmt.Sprintf("repository has a %s in progress; resolve or abort it first", e.InProgress)
	}
	var parts []string
	if len(e.Uncommitted) > 0 {
		parts = append(parts, fmt.Sprintf("uncommitted: %s", strings.Join(e.Uncommitted, ", ")))
	}
	if len(e.Untracked) > 0 {
		parts = append(parts, fmt.Sprintf("untracked: %s", strings.Join(e.Untracked, ", ")))
	}
	return fmt.Sprintf("working tree is not clean (%s); commit or stash changes first", strings.Join(parts, "; "))
}

// Is returns true if the target error is ErrUnsafeWorkspace
func (e *UnsafeWorkspaceError) Is(target error) bool {
	return target == ErrUnsafeWorkspace
}

// UnsupportedMergeCommitError represents an explicitly requested merge commit
// in no-auto-deps mode
type UnsupportedMergeCommitError struct {
	CommitID string
}

func (e *UnsupportedMergeCommitError) Error() string {
	return fmt.Sprintf("merge commits are not supported: %s", e.CommitID)
}

// Is returns true if the target error is ErrUnsupportedMergeCommit
func (e *UnsupportedMergeCommitError) Is(target error) bool {
	return target == ErrUnsupportedMergeCommit
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
