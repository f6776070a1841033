package cli

import (
	"github.com/spf13/cobra"

	"gitport.dev/gitport/internal/backport"
)

// newBackportCmd creates the backport command
func newBackportCmd() *cobra.Command {
	var (
		source     string
		target     string
		name       string
		commits    []string
		noAutoDeps bool
		allowDirty bool
	)

	cmd := &cobra.Command{
		Use:     "backport",
		Aliases: []string{"bp"},
		Short:   "Backport commits to a target branch, resolving dependencies",
		Long: `Backport commits to a target branch, resolving dependencies.

Computes the set of commits the requested ones depend on relative to the
target branch, creates a backport branch from the target and cherry-picks the
set in order. On conflict the run stops with the repository left mid
cherry-pick for manual resolution; nothing is pushed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd)
			if err != nil {
				return err
			}
			splog := newSplog(cmd)

			// A conflicted report is a terminal state, not a failure: the
			// operator guidance has already been printed.
			_, err = backport.Run(cmd.Context(), eng, splog, backport.Options{
				Source:     source,
				Target:     target,
				Commits:    commits,
				BranchName: name,
				NoAutoDeps: noAutoDeps,
				AllowDirty: allowDirty,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Source branch, tag, or commit.")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Target branch.")
	cmd.Flags().StringSliceVarP(&commits, "commit", "c", nil, "Comma-separated commit hashes to backport.")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the new backport branch.")
	cmd.Flags().BoolVar(&noAutoDeps, "no-auto-deps", false, "Disable automatic dependency detection and use only specified commits.")
	cmd.Flags().BoolVar(&allowDirty, "allow-dirty", false, "Proceed even if the working tree has local changes.")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
