package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"gitport.dev/gitport/internal/engine"
)

// CommitsBetween returns the commits reachable from `from` but not reachable
// from `excluding`, newest first. An empty `excluding` yields the full history
// of `from`.
func (r *Repository) CommitsBetween(from, excluding string) ([]engine.Commit, error) {
	fromHash, err := r.resolveHash(from)
	if err != nil {
		return nil, err
	}

	excluded := map[plumbing.Hash]bool{}
	if excluding != "" {
		excludingHash, err := r.resolveHash(excluding)
		if err != nil {
			return nil, err
		}
		if err := r.markReachable(excludingHash, excluded); err != nil {
			return nil, err
		}
	}

	visited := map[plumbing.Hash]bool{}
	var commits []*object.Commit
	queue := []plumbing.Hash{fromHash}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]

		if visited[hash] || excluded[hash] {
			continue
		}
		visited[hash] = true

		commit, err := r.repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
		}
		commits = append(commits, commit)
		queue = append(queue, commit.ParentHashes...)
	}

	// Commit-date order, newest first, matching what a revision walk yields.
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Committer.When.After(commits[j].Committer.When)
	})

	result := make([]engine.Commit, 0, len(commits))
	for _, commit := range commits {
		result = append(result, toEngineCommit(commit))
	}
	return result, nil
}

// LookupCommit returns the commit for an id.
func (r *Repository) LookupCommit(id string) (engine.Commit, error) {
	hash, err := r.resolveHash(id)
	if err != nil {
		return engine.Commit{}, err
	}
	commit, err := r.repo.CommitObject(hash)
	if err != nil {
		return engine.Commit{}, fmt.Errorf("failed to get commit %s: %w", id, err)
	}
	return toEngineCommit(commit), nil
}

// IsAncestor reports whether ancestor is reachable from descendant.
func (r *Repository) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorHash, err := r.resolveHash(ancestor)
	if err != nil {
		return false, err
	}
	descendantHash, err := r.resolveHash(descendant)
	if err != nil {
		return false, err
	}

	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := r.repo.CommitObject(ancestorHash)
	if err != nil {
		return false, fmt.Errorf("failed to get ancestor commit: %w", err)
	}
	descendantCommit, err := r.repo.CommitObject(descendantHash)
	if err != nil {
		return false, fmt.Errorf("failed to get descendant commit: %w", err)
	}

	return ancestorCommit.IsAncestor(descendantCommit)
}

func (r *Repository) markReachable(start plumbing.Hash, seen map[plumbing.Hash]bool) error {
	queue := []plumbing.Hash{start}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]

		if seen[hash] {
			continue
		}
		seen[hash] = true

		commit, err := r.repo.CommitObject(hash)
		if err != nil {
			return fmt.Errorf("failed to get commit %s: %w", hash, err)
		}
		queue = append(queue, commit.ParentHashes...)
	}
	return nil
}

func toEngineCommit(commit *object.Commit) engine.Commit {
	parents := make([]string, 0, len(commit.ParentHashes))
	for _, p := range commit.ParentHashes {
		parents = append(parents, p.String())
	}
	subject := strings.Split(strings.TrimSpace(commit.Message), "\n")[0]
	return engine.Commit{
		ID:      commit.Hash.String(),
		Parents: parents,
		Subject: subject,
	}
}
