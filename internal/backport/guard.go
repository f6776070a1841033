package backport

import (
	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
)

// EnsureSafe refuses to proceed unless the repository is safe to mutate.
//
// An in-progress merge, rebase or cherry-pick always fails, regardless of
// allowDirty: resuming someone's half-finished conflict resolution would
// corrupt both operations. A dirty working tree fails unless allowDirty.
// State is computed fresh on every call.
func EnsureSafe(eng engine.Engine, allowDirty bool) error {
	kind, err := eng.InProgress()
	if err != nil {
		return err
	}
	if kind != engine.ProgressNone {
		return &apperrors.UnsafeWorkspaceError{InProgress: kind.String()}
	}

	if allowDirty {
		return nil
	}

	status, err := eng.Status()
	if err != nil {
		return err
	}
	if !status.Clean() {
		return &apperrors.UnsafeWorkspaceError{
			Uncommitted: append(status.Uncommitted, status.Conflicting...),
			Untracked:   status.Untracked,
		}
	}
	return nil
}
