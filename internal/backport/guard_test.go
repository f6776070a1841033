package backport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitport.dev/gitport/internal/backport"
	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
)

func TestEnsureSafe(t *testing.T) {
	t.Run("clean workspace passes", func(t *testing.T) {
		f := engine.NewFake()
		require.NoError(t, backport.EnsureSafe(f, false))
	})

	t.Run("untracked file fails and is idempotent", func(t *testing.T) {
		f := engine.NewFake()
		f.Untracked = []string{"scratch.txt"}

		for i := 0; i < 2; i++ {
			err := backport.EnsureSafe(f, false)
			require.Error(t, err)
			require.ErrorIs(t, err, apperrors.ErrUnsafeWorkspace)

			var unsafeErr *apperrors.UnsafeWorkspaceError
			require.True(t, errors.As(err, &unsafeErr))
			require.Equal(t, []string{"scratch.txt"}, unsafeErr.Untracked)
		}
	})

	t.Run("uncommitted changes fail unless allowDirty", func(t *testing.T) {
		f := engine.NewFake()
		f.Uncommitted = []string{"main.go"}

		require.ErrorIs(t, backport.EnsureSafe(f, false), apperrors.ErrUnsafeWorkspace)
		require.NoError(t, backport.EnsureSafe(f, true))
	})

	t.Run("in-progress operation fails even with allowDirty", func(t *testing.T) {
		f := engine.NewFake()
		f.Progress = engine.ProgressCherryPick

		err := backport.EnsureSafe(f, true)
		require.ErrorIs(t, err, apperrors.ErrUnsafeWorkspace)

		var unsafeErr *apperrors.UnsafeWorkspaceError
		require.True(t, errors.As(err, &unsafeErr))
		require.Equal(t, "cherry-pick", unsafeErr.InProgress)
	})
}
