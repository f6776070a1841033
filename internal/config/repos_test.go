package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitport.dev/gitport/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRepos(t *testing.T) {
	t.Run("repos key", func(t *testing.T) {
		path := writeConfig(t, "repos:\n  - /srv/alpha\n  - /srv/beta\n")

		repos, err := config.LoadRepos(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/srv/alpha", "/srv/beta"}, repos)
	})

	t.Run("repositories key is accepted too", func(t *testing.T) {
		path := writeConfig(t, "repositories:\n  - /srv/gamma\n")

		repos, err := config.LoadRepos(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/srv/gamma"}, repos)
	})

	t.Run("repos wins when both keys are present", func(t *testing.T) {
		path := writeConfig(t, "repos:\n  - /srv/alpha\nrepositories:\n  - /srv/gamma\n")

		repos, err := config.LoadRepos(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/srv/alpha"}, repos)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.LoadRepos(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "repos: [unclosed\n")

		_, err := config.LoadRepos(path)
		require.Error(t, err)
	})

	t.Run("empty file yields no repos", func(t *testing.T) {
		path := writeConfig(t, "")

		repos, err := config.LoadRepos(path)
		require.NoError(t, err)
		require.Empty(t, repos)
	})
}
