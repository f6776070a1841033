package git

import (
	"context"
	"fmt"

	"gitport.dev/gitport/internal/engine"
)

// Fetch updates remote-tracking refs from the named remote.
func (r *Repository) Fetch(ctx context.Context, remote string) error {
	_, err := r.runner.Run(ctx, "fetch", remote)
	if err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

// Rebase replays the checked-out branch onto upstream. A conflict stop is
// reported as RebaseConflict with the repository left mid-rebase for manual
// resolution.
func (r *Repository) Rebase(ctx context.Context, upstream string) (engine.RebaseResult, error) {
	_, err := r.runner.Run(ctx, "rebase", upstream)
	if err != nil {
		kind, stateErr := r.InProgress()
		if stateErr == nil && kind == engine.ProgressRebase {
			return engine.RebaseConflict, nil
		}
		return engine.RebaseConflict, fmt.Errorf("rebase onto %s failed: %w", upstream, err)
	}
	return engine.RebaseDone, nil
}

// Push pushes a branch to the named remote.
func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	_, err := r.runner.Run(ctx, "push", remote, branch)
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
