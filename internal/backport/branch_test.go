package backport_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitport.dev/gitport/internal/backport"
	"gitport.dev/gitport/internal/output"
)

func TestDeriveBranchName(t *testing.T) {
	t.Run("slashes in target are flattened", func(t *testing.T) {
		closure := []string{"abc1234def5678abc1234def5678abc1234def56"}
		name := backport.DeriveBranchName("release/2.26", closure)
		require.Equal(t, "backport/release-2.26/abc1234", name)
	})

	t.Run("last closure entry wins", func(t *testing.T) {
		closure := []string{
			"1111111aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			"2222222bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		}
		name := backport.DeriveBranchName("main", closure)
		require.Equal(t, "backport/main/2222222", name)
	})

	t.Run("empty closure falls back to unknown", func(t *testing.T) {
		name := backport.DeriveBranchName("release/2.26", nil)
		require.Equal(t, "backport/release-2.26/unknown", name)
	})
}

func TestMaterialize(t *testing.T) {
	t.Run("creates branch from target tip", func(t *testing.T) {
		f := linearFake()

		name, err := backport.Materialize(context.Background(), f, testSplog(), "release", "", []string{"D"})
		require.NoError(t, err)
		require.Equal(t, "backport/release/D", name)
		require.Equal(t, f.Tip("release"), f.Tip(name))

		current, err := f.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, name, current)
	})

	t.Run("explicit name overrides derivation", func(t *testing.T) {
		f := linearFake()

		name, err := backport.Materialize(context.Background(), f, testSplog(), "release", "hotfix", []string{"D"})
		require.NoError(t, err)
		require.Equal(t, "hotfix", name)
	})

	t.Run("existing branch is reused with warning and tip untouched", func(t *testing.T) {
		f := linearFake()
		f.SetBranch("backport/release/D", "C")

		var buf bytes.Buffer
		splog := output.NewSplogWriter(&buf)

		name, err := backport.Materialize(context.Background(), f, splog, "release", "", []string{"D"})
		require.NoError(t, err)
		require.Equal(t, "backport/release/D", name)
		require.Contains(t, buf.String(), "already exists")

		// The existing tip is left alone; replay continues from it.
		require.Equal(t, "C", f.Tip(name))
		current, err := f.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, name, current)
	})
}
