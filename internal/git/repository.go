package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"gitport.dev/gitport/internal/engine"
)

// Repository is the production engine.Engine. It wraps a go-git repository
// for the read side and a CommandRunner for mutations, both bound to an
// explicit path so that multiple repositories can be driven from one process.
type Repository struct {
	repo   *gogit.Repository
	runner *CommandRunner
	root   string
}

var _ engine.Engine = (*Repository)(nil)

// Open opens the repository containing path.
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %s: %w", absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Repository{
		repo:   repo,
		runner: NewCommandRunner(root),
		root:   root,
	}, nil
}

// Root returns the repository's working-tree root.
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the checked-out branch name.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// BranchNames returns all local branch names.
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return names, nil
}

// BranchExists reports whether a local branch exists.
func (r *Repository) BranchExists(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read branch %s: %w", name, err)
	}
	return true, nil
}

// CheckoutBranch checks out an existing branch.
func (r *Repository) CheckoutBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates a branch at startPoint and checks it out.
func (r *Repository) CreateAndCheckoutBranch(ctx context.Context, name, startPoint string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", name, startPoint)
	if err != nil {
		return fmt.Errorf("failed to create branch %s from %s: %w", name, startPoint, err)
	}
	return nil
}
