// Package engine defines the version-control capability surface the backport
// core depends on. The production adapter lives in internal/git; an in-memory
// fake for unit tests lives alongside in this package.
package engine

import (
	"context"
)

// Commit is an immutable description of a single commit, referenced by id.
type Commit struct {
	ID      string
	Parents []string
	Subject string
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// ShortID returns the abbreviated commit id.
func (c Commit) ShortID() string {
	return ShortID(c.ID)
}

// ShortID abbreviates a commit id to 7 hex characters.
func ShortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// ProgressKind identifies an in-flight repository operation.
type ProgressKind int

const (
	// ProgressNone means no operation is in flight
	ProgressNone ProgressKind = iota
	// ProgressMerge means a merge is awaiting resolution
	ProgressMerge
	// ProgressRebase means a rebase is awaiting resolution
	ProgressRebase
	// ProgressCherryPick means a cherry-pick is awaiting resolution
	ProgressCherryPick
)

func (k ProgressKind) String() string {
	switch k {
	case ProgressMerge:
		return "merge"
	case ProgressRebase:
		return "rebase"
	case ProgressCherryPick:
		return "cherry-pick"
	default:
		return "none"
	}
}

// Status holds the working-tree paths relevant to safety checks and
// conflict reporting. Computed fresh on every call, never cached.
type Status struct {
	Uncommitted []string
	Untracked   []string
	Conflicting []string
}

// Clean reports whether the working tree has no pending changes.
func (s Status) Clean() bool {
	return len(s.Uncommitted) == 0 && len(s.Untracked) == 0 && len(s.Conflicting) == 0
}

// PickResult represents the outcome of a single cherry-pick.
type PickResult int

const (
	// PickApplied indicates the commit was applied cleanly
	PickApplied PickResult = iota
	// PickConflict indicates the pick stopped on conflicts, leaving the
	// repository mid cherry-pick for manual resolution
	PickConflict
	// PickSkipped indicates the commit was already represented on the
	// destination and the pick was skipped as empty
	PickSkipped
)

// RebaseResult represents the outcome of a rebase.
type RebaseResult int

const (
	// RebaseDone indicates the rebase completed
	RebaseDone RebaseResult = iota
	// RebaseConflict indicates the rebase stopped on conflicts
	RebaseConflict
)

// Engine is the injected version-control capability. Implementations operate
// on one repository, identified at construction time by an explicit path;
// nothing in the core relies on the process working directory.
//
// All methods are blocking and non-reentrant against the same repository.
type Engine interface {
	// Root returns the repository's working-tree root.
	Root() string

	// ResolveRevision maps any revision string git understands (branch, tag,
	// short or full hash, HEAD, HEAD~n) to a full commit id. Returns an error
	// satisfying errors.Is(err, ErrUnresolvedReference) on failure.
	ResolveRevision(ref string) (string, error)

	// Status returns the current working-tree paths by category.
	Status() (Status, error)

	// InProgress reports whether a merge, rebase or cherry-pick is mid-flight.
	InProgress() (ProgressKind, error)

	// CurrentBranch returns the checked-out branch name, or an error when
	// HEAD is detached.
	CurrentBranch() (string, error)

	// BranchNames lists all local branch names.
	BranchNames() ([]string, error)

	// BranchExists reports whether a local branch exists.
	BranchExists(name string) (bool, error)

	// CheckoutBranch checks out an existing branch.
	CheckoutBranch(ctx context.Context, name string) error

	// CreateAndCheckoutBranch creates a branch at startPoint and checks it out.
	CreateAndCheckoutBranch(ctx context.Context, name, startPoint string) error

	// CherryPick replays a single commit onto the checked-out branch.
	// A conflict is reported as PickConflict with a nil error; any other
	// failure is returned verbatim.
	CherryPick(ctx context.Context, commitID string) (PickResult, error)

	// CommitsBetween returns the commits reachable from `from` but not from
	// `excluding`, newest first.
	CommitsBetween(from, excluding string) ([]Commit, error)

	// LookupCommit returns the commit for a full id.
	LookupCommit(id string) (Commit, error)

	// IsAncestor reports whether ancestor is reachable from descendant.
	IsAncestor(ancestor, descendant string) (bool, error)

	// Fetch updates remote-tracking refs from the named remote.
	Fetch(ctx context.Context, remote string) error

	// Rebase replays the checked-out branch onto upstream.
	Rebase(ctx context.Context, upstream string) (RebaseResult, error)

	// Push pushes a branch to the named remote.
	Push(ctx context.Context, remote, branch string) error
}
