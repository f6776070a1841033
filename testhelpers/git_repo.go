// Package testhelpers provides real git repositories in temp directories for
// integration-style tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo represents a git repository created for a single test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a fresh repository under t.TempDir with a deterministic
// config: main as the default branch, a fixed test identity, and the global
// git config masked out.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	repo := &GitRepo{Dir: dir}

	// Git user is required for commits
	repo.Git(t, "config", "user.name", "Test User")
	repo.Git(t, "config", "user.email", "test@example.com")

	return repo
}

// Git runs a git command in the repository and fails the test on error.
func (r *GitRepo) Git(t *testing.T, args ...string) string {
	t.Helper()

	out, err := r.tryGit(args...)
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

// TryGit runs a git command and returns its combined output and error.
func (r *GitRepo) TryGit(args ...string) (string, error) {
	return r.tryGit(args...)
}

func (r *GitRepo) tryGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// WriteFile writes a file relative to the repository root.
func (r *GitRepo) WriteFile(t *testing.T, name, content string) {
	t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// Commit writes a file and commits it, returning the new commit id.
func (r *GitRepo) Commit(t *testing.T, message, file, content string) string {
	t.Helper()

	r.WriteFile(t, file, content)
	r.Git(t, "add", ".")
	r.Git(t, "commit", "-m", message)
	return r.Head(t)
}

// Head returns the commit id HEAD points to.
func (r *GitRepo) Head(t *testing.T) string {
	t.Helper()
	return r.Git(t, "rev-parse", "HEAD")
}

// Rev returns the commit id a ref points to.
func (r *GitRepo) Rev(t *testing.T, ref string) string {
	t.Helper()
	return r.Git(t, "rev-parse", ref)
}

// CreateBranch creates a branch without checking it out.
func (r *GitRepo) CreateBranch(t *testing.T, name string) {
	t.Helper()
	r.Git(t, "branch", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(t *testing.T, name string) {
	t.Helper()
	r.Git(t, "checkout", name)
}

// CheckoutNewBranch creates and checks out a branch.
func (r *GitRepo) CheckoutNewBranch(t *testing.T, name string) {
	t.Helper()
	r.Git(t, "checkout", "-b", name)
}

// CherryPickInProgress reports whether the repository is mid cherry-pick.
func (r *GitRepo) CherryPickInProgress() bool {
	_, err := os.Stat(filepath.Join(r.Dir, ".git", "CHERRY_PICK_HEAD"))
	return err == nil
}

// MessagesOn returns the commit subjects reachable from ref, newest first.
func (r *GitRepo) MessagesOn(t *testing.T, ref string) []string {
	t.Helper()

	out := r.Git(t, "log", "--format=%s", ref)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// String implements fmt.Stringer for debugging output.
func (r *GitRepo) String() string {
	return fmt.Sprintf("GitRepo(%s)", r.Dir)
}
