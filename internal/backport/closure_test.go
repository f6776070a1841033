package backport_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitport.dev/gitport/internal/backport"
	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
	"gitport.dev/gitport/internal/output"
)

// linearFake builds base <- A <- B <- C <- D on main, with release still at
// base.
func linearFake() *engine.Fake {
	f := engine.NewFake()
	f.AddCommit("base")
	f.AddCommit("A", "base")
	f.AddCommit("B", "A")
	f.AddCommit("C", "B")
	f.AddCommit("D", "C")
	f.SetBranch("main", "D")
	f.SetBranch("release", "base")
	f.Head("main")
	return f
}

func testSplog() *output.Splog {
	return output.NewSplogWriter(&bytes.Buffer{})
}

func TestResolveClosure(t *testing.T) {
	t.Run("expands full ancestry oldest first", func(t *testing.T) {
		f := linearFake()

		closure, err := backport.ResolveClosure(f, testSplog(), []string{"D"}, f.Tip("release"), backport.DefaultClosureOptions(false))
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "C", "D"}, closure)
	})

	t.Run("no auto deps replays exactly the requested list", func(t *testing.T) {
		f := linearFake()

		closure, err := backport.ResolveClosure(f, testSplog(), []string{"D"}, f.Tip("release"), backport.DefaultClosureOptions(true))
		require.NoError(t, err)
		require.Equal(t, []string{"D"}, closure)
	})

	t.Run("duplicate requests appear once at first position", func(t *testing.T) {
		f := linearFake()

		closure, err := backport.ResolveClosure(f, testSplog(), []string{"B", "D", "B"}, f.Tip("release"), backport.DefaultClosureOptions(true))
		require.NoError(t, err)
		require.Equal(t, []string{"B", "D"}, closure)
	})

	t.Run("dependency requested again later keeps its earliest position", func(t *testing.T) {
		f := linearFake()

		// C pulls in A and B; B is then requested explicitly as well.
		closure, err := backport.ResolveClosure(f, testSplog(), []string{"C", "B"}, f.Tip("release"), backport.DefaultClosureOptions(false))
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "C"}, closure)
	})

	t.Run("commit already on target yields empty closure", func(t *testing.T) {
		f := linearFake()

		closure, err := backport.ResolveClosure(f, testSplog(), []string{"base"}, f.Tip("release"), backport.DefaultClosureOptions(false))
		require.NoError(t, err)
		require.Empty(t, closure)
	})

	t.Run("explicit commit already on target is filtered", func(t *testing.T) {
		f := linearFake()
		f.SetBranch("release", "B")

		closure, err := backport.ResolveClosure(f, testSplog(), []string{"A", "C"}, f.Tip("release"), backport.DefaultClosureOptions(true))
		require.NoError(t, err)
		require.Equal(t, []string{"C"}, closure)
	})

	t.Run("merge commits are skipped with a warning under auto deps", func(t *testing.T) {
		f := engine.NewFake()
		f.AddCommit("base")
		f.AddCommit("A", "base")
		f.AddCommit("B", "A")
		f.AddCommit("X", "base")
		f.AddCommit("M", "B", "X")
		f.SetBranch("main", "M")
		f.SetBranch("release", "base")

		var buf bytes.Buffer
		splog := output.NewSplogWriter(&buf)

		closure, err := backport.ResolveClosure(f, splog, []string{"M"}, f.Tip("release"), backport.DefaultClosureOptions(false))
		require.NoError(t, err)
		require.NotContains(t, closure, "M")
		require.ElementsMatch(t, []string{"A", "B", "X"}, closure)
		require.Contains(t, buf.String(), "skipping merge commit")
	})

	t.Run("explicit merge commit fails without auto deps", func(t *testing.T) {
		f := engine.NewFake()
		f.AddCommit("base")
		f.AddCommit("A", "base")
		f.AddCommit("X", "base")
		f.AddCommit("M", "A", "X")
		f.SetBranch("release", "base")

		_, err := backport.ResolveClosure(f, testSplog(), []string{"M"}, f.Tip("release"), backport.DefaultClosureOptions(true))
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrUnsupportedMergeCommit)

		var mergeErr *apperrors.UnsupportedMergeCommitError
		require.True(t, errors.As(err, &mergeErr))
		require.Equal(t, "M", mergeErr.CommitID)
	})
}
