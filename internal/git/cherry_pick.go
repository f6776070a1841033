package git

import (
	"context"
	"errors"
	"strings"

	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
)

// CherryPick replays a single commit onto the checked-out branch.
//
// Three outcomes: PickApplied on a clean pick; PickConflict when git stops on
// conflicts, in which case the repository is deliberately left mid
// cherry-pick so the operator can resolve and `git cherry-pick --continue`;
// PickSkipped when the change is already present on the destination and the
// pick becomes empty. Anything else is surfaced verbatim.
func (r *Repository) CherryPick(ctx context.Context, commitID string) (engine.PickResult, error) {
	_, err := r.runner.Run(ctx, "cherry-pick", commitID)
	if err == nil {
		return engine.PickApplied, nil
	}

	var cmdErr *apperrors.GitCommandError
	if errors.As(err, &cmdErr) && isEmptyPick(cmdErr) {
		// The change is already on the destination. Drop the stopped pick
		// and move on.
		if _, skipErr := r.runner.Run(ctx, "cherry-pick", "--skip"); skipErr != nil {
			return engine.PickSkipped, skipErr
		}
		return engine.PickSkipped, nil
	}

	kind, stateErr := r.InProgress()
	if stateErr == nil && kind == engine.ProgressCherryPick {
		return engine.PickConflict, nil
	}

	return engine.PickApplied, err
}

// isEmptyPick matches git's message for a pick whose changes are already in
// the target history.
func isEmptyPick(err *apperrors.GitCommandError) bool {
	return strings.Contains(err.Stderr, "is now empty") ||
		strings.Contains(err.Stdout, "is now empty") ||
		strings.Contains(err.Stderr, "--allow-empty")
}
