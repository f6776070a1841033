package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitport.dev/gitport/internal/backport"
	"gitport.dev/gitport/internal/config"
	apperrors "gitport.dev/gitport/internal/errors"
	"gitport.dev/gitport/internal/git"
)

// newVersionBranchCmd creates the create-version-branch command
func newVersionBranchCmd() *cobra.Command {
	var (
		branchName string
		baseBranch string
		configFile string
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "create-version-branch",
		Aliases: []string{"cvb"},
		Short:   "Create a new version branch across multiple repositories",
		Long: `Create a new version branch across multiple repositories.

Reads a YAML file listing repository paths and creates the branch in each of
them from the given base branch, or from each repository's current branch when
no base is given. All operations are local; repositories are assumed to be
up to date.`,
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
					splog.Error("error processing %s: %v", path, err)
					continue
				}

				if force {
					splog.Warn("skipping clean-state check (--force)")
				}
				if err := backport.EnsureSafe(eng, force); err != nil {
					splog.Error("repository not safe to modify: %s: %v", path, err)
					continue
				}

				startPoint := baseBranch
				if startPoint == "" {
					startPoint, err = eng.CurrentBranch()
					if err != nil {
						splog.Error("error processing %s: %v", path, err)
						continue
					}
					splog.Info("  using current branch as base: %s", startPoint)
				}

				exists, err := eng.BranchExists(branchName)
				if err != nil {
					splog.Error("error processing %s: %v", path, err)
					continue
				}
				if exists {
					splog.Warn("branch already exists: %s", branchName)
					continue
				}
				if err := eng.CreateAndCheckoutBranch(cmd.Context(), branchName, startPoint); err != nil {
					splog.Error("error processing %s: %v", path, err)
					continue
				}
				splog.Info("  created and checked out branch: %s", branchName)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branchName, "new-branch", "n", "", "Name of the branch to create (e.g. release/v1.2.0).")
	cmd.Flags().StringVarP(&baseBranch, "base-branch", "b", "", "Local base branch to create from (defaults to each repo's current branch).")
	cmd.Flags().StringVarP(&configFile, "config-file", "c", "cvb-repos.yaml", "Path to repos config file (YAML format).")
	cmd.Flags().BoolVar(&force, "force", false, "Skip clean-state check and proceed even if there are uncommitted changes.")
	_ = cmd.MarkFlagRequired("new-branch")

	return cmd
}
