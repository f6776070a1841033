// Package cli wires the gitport commands together with cobra.
package cli

import (
	"github.com/spf13/cobra"

	"gitport.dev/gitport/internal/engine"
	"gitport.dev/gitport/internal/git"
	"gitport.dev/gitport/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gitport",
		Short:         "Gitport automates backports and branch chores across local git repositories",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringP("directory", "C", ".", "Run as if started in this directory.")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug output.")

	rootCmd.AddCommand(newBackportCmd())
	rootCmd.AddCommand(newVersionBranchCmd())
	rootCmd.AddCommand(newFeatureBranchCmd())
	rootCmd.AddCommand(newRebaseAllCmd())
	rootCmd.AddCommand(newListBranchesCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// openEngine opens the repository named by the --directory flag.
func openEngine(cmd *cobra.Command) (engine.Engine, error) {
	dir := cmd.Flag("directory").Value.String()
	return git.Open(dir)
}

// newSplog builds the command's logger honoring --verbose.
func newSplog(cmd *cobra.Command) *output.Splog {
	splog := output.NewSplog()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		splog.SetVerbose(true)
	}
	return splog
}
