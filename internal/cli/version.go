package cli

import (
	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gitport version",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)
			splog.Info("gitport %s", version)
			return nil
		},
	}
}
