package engine

import (
	"context"
	"fmt"
	"strings"

	apperrors "gitport.dev/gitport/internal/errors"
)

// Fake is an in-memory Engine for unit tests. Commits form a DAG keyed by id;
// branches are name -> tip pointers. Cherry-pick outcomes are scripted per
// commit id via ConflictOn and EmptyOn.
//
// Commits must be added parents-first; walk ordering derives from insertion
// order, newest first, which matches a revision walk over the histories the
// tests build.
type Fake struct {
	root     string
	commits  map[string]Commit
	order    []string
	branches map[string]string
	head     string

	// Scripted working-tree state
	Uncommitted []string
	Untracked   []string
	Progress    ProgressKind

	// Scripted cherry-pick behavior
	ConflictOn    map[string]bool
	EmptyOn       map[string]bool
	ConflictPaths []string

	// Recorded activity
	Picked    []string
	Applied   []string
	Checkouts []string
	Fetched   []string
	Pushed    []string
}

// NewFake creates an empty fake engine.
func NewFake() *Fake {
	return &Fake{
		root:       "/fake/repo",
		commits:    map[string]Commit{},
		branches:   map[string]string{},
		ConflictOn: map[string]bool{},
		EmptyOn:    map[string]bool{},
	}
}

// AddCommit registers a commit with the given parents. Parents must already
// be registered.
func (f *Fake) AddCommit(id string, parents ...string) Commit {
	for _, p := range parents {
		if _, ok := f.commits[p]; !ok {
			panic(fmt.Sprintf("fake: unknown parent %s", p))
		}
	}
	c := Commit{ID: id, Parents: parents, Subject: "commit " + id}
	f.commits[id] = c
	f.order = append(f.order, id)
	return c
}

// SetBranch points a branch at a commit id, creating it if needed.
func (f *Fake) SetBranch(name, tip string) {
	f.branches[name] = tip
}

// Head sets the checked-out branch.
func (f *Fake) Head(name string) {
	f.head = name
}

// Tip returns the commit id a branch points to.
func (f *Fake) Tip(name string) string {
	return f.branches[name]
}

func (f *Fake) Root() string { return f.root }

func (f *Fake) ResolveRevision(ref string) (string, error) {
	if tip, ok := f.branches[ref]; ok {
		return tip, nil
	}
	if _, ok := f.commits[ref]; ok {
		return ref, nil
	}
	// Abbreviated ids resolve when unambiguous
	var match string
	for id := range f.commits {
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", apperrors.NewUnresolvedReferenceError(ref, fmt.Errorf("ambiguous"))
			}
			match = id
		}
	}
	if match != "" {
		return match, nil
	}
	return "", apperrors.NewUnresolvedReferenceError(ref, nil)
}

func (f *Fake) Status() (Status, error) {
	st := Status{
		Uncommitted: append([]string(nil), f.Uncommitted...),
		Untracked:   append([]string(nil), f.Untracked...),
	}
	if f.Progress == ProgressCherryPick {
		st.Conflicting = append([]string(nil), f.ConflictPaths...)
	}
	return st, nil
}

func (f *Fake) InProgress() (ProgressKind, error) {
	return f.Progress, nil
}

func (f *Fake) CurrentBranch() (string, error) {
	if f.head == "" {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return f.head, nil
}

func (f *Fake) BranchNames() ([]string, error) {
	names := make([]string, 0, len(f.branches))
	for name := range f.branches {
		names = append(names, name)
	}
	return names, nil
}

func (f *Fake) BranchExists(name string) (bool, error) {
	_, ok := f.branches[name]
	return ok, nil
}

func (f *Fake) CheckoutBranch(_ context.Context, name string) error {
	if _, ok := f.branches[name]; !ok {
		return fmt.Errorf("branch %s does not exist", name)
	}
	f.head = name
	f.Checkouts = append(f.Checkouts, name)
	return nil
}

func (f *Fake) CreateAndCheckoutBranch(_ context.Context, name, startPoint string) error {
	if _, ok := f.branches[name]; ok {
		return fmt.Errorf("branch %s already exists", name)
	}
	tip, err := f.ResolveRevision(startPoint)
	if err != nil {
		return err
	}
	f.branches[name] = tip
	f.head = name
	f.Checkouts = append(f.Checkouts, name)
	return nil
}

func (f *Fake) CherryPick(_ context.Context, commitID string) (PickResult, error) {
	f.Picked = append(f.Picked, commitID)
	if f.ConflictOn[commitID] {
		f.Progress = ProgressCherryPick
		return PickConflict, nil
	}
	if f.EmptyOn[commitID] {
		return PickSkipped, nil
	}
	// Advance the checked-out branch with a replayed copy of the commit.
	picked := commitID + "'"
	f.AddCommit(picked, f.branches[f.head])
	f.branches[f.head] = picked
	f.Applied = append(f.Applied, commitID)
	return PickApplied, nil
}

func (f *Fake) CommitsBetween(from, excluding string) ([]Commit, error) {
	fromID, err := f.ResolveRevision(from)
	if err != nil {
		return nil, err
	}
	excluded := map[string]bool{}
	if excluding != "" {
		excludingID, err := f.ResolveRevision(excluding)
		if err != nil {
			return nil, err
		}
		excluded = f.reachable(excludingID)
	}
	include := f.reachable(fromID)

	// Newest first: reverse insertion order restricted to the include set.
	var commits []Commit
	for i := len(f.order) - 1; i >= 0; i-- {
		id := f.order[i]
		if include[id] && !excluded[id] {
			commits = append(commits, f.commits[id])
		}
	}
	return commits, nil
}

func (f *Fake) LookupCommit(id string) (Commit, error) {
	c, ok := f.commits[id]
	if !ok {
		return Commit{}, apperrors.NewUnresolvedReferenceError(id, nil)
	}
	return c, nil
}

func (f *Fake) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorID, err := f.ResolveRevision(ancestor)
	if err != nil {
		return false, err
	}
	descendantID, err := f.ResolveRevision(descendant)
	if err != nil {
		return false, err
	}
	return f.reachable(descendantID)[ancestorID], nil
}

func (f *Fake) Fetch(_ context.Context, remote string) error {
	f.Fetched = append(f.Fetched, remote)
	return nil
}

func (f *Fake) Rebase(_ context.Context, _ string) (RebaseResult, error) {
	return RebaseDone, nil
}

func (f *Fake) Push(_ context.Context, remote, branch string) error {
	f.Pushed = append(f.Pushed, remote+"/"+branch)
	return nil
}

// reachable returns the transitive closure of ids reachable from start,
// including start itself.
func (f *Fake) reachable(start string) map[string]bool {
	seen := map[string]bool{}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, p := range f.commits[id].Parents {
			if !seen[p] {
				queue = append(queue, p)
			}
		}
	}
	return seen
}
