package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitport.dev/gitport/internal/backport"
	"gitport.dev/gitport/internal/config"
	"gitport.dev/gitport/internal/engine"
	apperrors "gitport.dev/gitport/internal/errors"
	"gitport.dev/gitport/internal/git"
)

// newRebaseAllCmd creates the rebase-all command
func newRebaseAllCmd() *cobra.Command {
	var (
		branch     string
		baseBranch string
		configFile string
		push       bool
	)

	cmd := &cobra.Command{
		Use:     "rebase-all",
		Aliases: []string{"ra"},
		Short:   "Fetch and rebase a branch across all repos in your repos file",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)

			repos, err := config.LoadRepos(configFile)
			if err != nil {
				return err
			}
			if len(repos) == 0 {
				return apperrors.ErrNoRepositories
			}

			for _, path := range repos {
				if info, err := os.Stat(path); err != nil || !info.IsDir() {
					splog.Error("not a directory, skipping: %s", path)
					continue
				}

				splog.Info("processing repo: %s", path)
				eng, err := git.Open(path)
				if err != nil {
					splog.Error("  error in %s: %v", path, err)
					continue
				}

				if err := backport.EnsureSafe(eng, false); err != nil {
					splog.Error("  unsafe workspace in %s: %v", path, err)
					continue
				}

				if err := eng.CheckoutBranch(cmd.Context(), branch); err != nil {
					splog.Error("  error in %s: %v", path, err)
					continue
				}

				splog.Info("  fetching origin/%s", baseBranch)
				if err := eng.Fetch(cmd.Context(), "origin"); err != nil {
					splog.Error("  error in %s: %v", path, err)
					continue
				}

				splog.Info("  rebasing %s onto origin/%s", branch, baseBranch)
				result, err := eng.Rebase(cmd.Context(), "origin/"+baseBranch)
				if err != nil {
					splog.Error("  rebase failed: %v", err)
					continue
				}
				if result != engine.RebaseDone {
					splog.Error("  rebase stopped on conflicts, resolve manually in %s", path)
					continue
				}
				splog.Info("  rebase successful")

				if push {
					if err := eng.Push(cmd.Context(), "origin", branch); err != nil {
						splog.Error("  push failed: %v", err)
						continue
					}
					splog.Info("  pushed rebased branch to origin/%s", branch)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "n", "", "Local branch to rebase (e.g. feature/foo).")
	cmd.Flags().StringVarP(&baseBranch, "base-branch", "b", "master", "Base branch to pull in before replaying commits.")
	cmd.Flags().StringVarP(&configFile, "config-file", "c", "rebase-all-repos.yaml", "YAML file listing repositories.")
	cmd.Flags().BoolVarP(&push, "push", "p", false, "After a successful rebase, push the rebased branch upstream.")
	_ = cmd.MarkFlagRequired("branch")

	return cmd
}
