package cli

import (
	"github.com/spf13/cobra"

	"gitport.dev/gitport/internal/backport"
)

// newFeatureBranchCmd creates the feature-branch command
func newFeatureBranchCmd() *cobra.Command {
	var (
		name       string
		baseBranch string
	)

	cmd := &cobra.Command{
		Use:     "feature-branch",
		Aliases: []string{"fb"},
		Short:   "Create a new feature branch called feature/<name>",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd)
			if err != nil {
				return err
			}
			splog := newSplog(cmd)

			if err := backport.EnsureSafe(eng, false); err != nil {
				return err
			}

			startPoint := baseBranch
			if startPoint != "" {
				if err := eng.CheckoutBranch(cmd.Context(), startPoint); err != nil {
					return err
				}
			} else {
				startPoint, err = eng.CurrentBranch()
				if err != nil {
					return err
				}
				splog.Info("using current branch as base: %s", startPoint)
			}

			featureBranch := "feature/" + name
			if err := eng.CreateAndCheckoutBranch(cmd.Context(), featureBranch, startPoint); err != nil {
				return err
			}
			splog.Info("feature branch %s created from %s", featureBranch, startPoint)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "branch-name", "n", "", "Name of the feature (the new branch will be feature/<name>).")
	cmd.Flags().StringVarP(&baseBranch, "base-branch", "b", "", "Local base branch to create from (defaults to current HEAD).")
	_ = cmd.MarkFlagRequired("branch-name")

	return cmd
}
