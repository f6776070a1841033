package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitport.dev/gitport/internal/cli"
	"gitport.dev/gitport/testhelpers"
)

func run(t *testing.T, args ...string) error {
	t.Helper()

	cmd := cli.NewRootCmd("test")
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestBackportCommand(t *testing.T) {
	t.Run("creates the backport branch", func(t *testing.T) {
		repo := testhelpers.NewGitRepo(t)
		repo.Commit(t, "initial", "base.txt", "base")
		repo.CreateBranch(t, "release")
		repo.Commit(t, "add alpha", "alpha.txt", "alpha")

		err := run(t, "backport", "-C", repo.Dir, "-s", "main", "-t", "release")
		require.NoError(t, err)

		branches := repo.Git(t, "branch", "--list", "backport/release/*")
		require.NotEmpty(t, branches)
	})

	t.Run("missing required flags fail", func(t *testing.T) {
		repo := testhelpers.NewGitRepo(t)
		repo.Commit(t, "initial", "base.txt", "base")

		err := run(t, "backport", "-C", repo.Dir, "-s", "main")
		require.Error(t, err)
	})

	t.Run("explicit branch name is honored", func(t *testing.T) {
		repo := testhelpers.NewGitRepo(t)
		repo.Commit(t, "initial", "base.txt", "base")
		repo.CreateBranch(t, "release")
		repo.Commit(t, "add alpha", "alpha.txt", "alpha")

		err := run(t, "backport", "-C", repo.Dir, "-s", "main", "-t", "release", "-n", "hotfix/alpha")
		require.NoError(t, err)

		branches := repo.Git(t, "branch", "--list", "hotfix/alpha")
		require.NotEmpty(t, branches)
	})
}

func TestVersionBranchCommand(t *testing.T) {
	t.Run("fans out over the repos file", func(t *testing.T) {
		first := testhelpers.NewGitRepo(t)
		first.Commit(t, "initial", "base.txt", "base")
		second := testhelpers.NewGitRepo(t)
		second.Commit(t, "initial", "base.txt", "base")

		configPath := filepath.Join(t.TempDir(), "cvb-repos.yaml")
		content := "repos:\n  - " + first.Dir + "\n  - " + second.Dir + "\n"
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		err := run(t, "create-version-branch", "-n", "release/v1.2.0", "-c", configPath)
		require.NoError(t, err)

		for _, repo := range []*testhelpers.GitRepo{first, second} {
			branches := repo.Git(t, "branch", "--list", "release/v1.2.0")
			require.NotEmpty(t, branches)
		}
	})

	t.Run("dirty repo is skipped without failing the run", func(t *testing.T) {
		repo := testhelpers.NewGitRepo(t)
		repo.Commit(t, "initial", "base.txt", "base")
		repo.WriteFile(t, "scratch.txt", "dirty")

		configPath := filepath.Join(t.TempDir(), "cvb-repos.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("repos:\n  - "+repo.Dir+"\n"), 0600))

		err := run(t, "create-version-branch", "-n", "release/v1.2.0", "-c", configPath)
		require.NoError(t, err)

		branches := repo.Git(t, "branch", "--list", "release/v1.2.0")
		require.Empty(t, branches)
	})
}

func TestFeatureBranchCommand(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.Commit(t, "initial", "base.txt", "base")

	err := run(t, "feature-branch", "-C", repo.Dir, "-n", "widgets")
	require.NoError(t, err)

	branches := repo.Git(t, "branch", "--list", "feature/widgets")
	require.NotEmpty(t, branches)
}

func TestVersionCommand(t *testing.T) {
	require.NoError(t, run(t, "version"))
}

func TestListBranchesCommand(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.Commit(t, "initial", "base.txt", "base")
	repo.CreateBranch(t, "release/2.26")

	require.NoError(t, run(t, "list-branches", "-C", repo.Dir))
	require.NoError(t, run(t, "list-branches", "-C", repo.Dir, "--filter", "release/"))
}
