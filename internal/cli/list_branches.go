package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// newListBranchesCmd creates the list-branches command
func newListBranchesCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list-branches",
		Aliases: []string{"ls"},
		Short:   "List available git branches, optionally filtered by prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(cmd)
			if err != nil {
				return err
			}
			splog := newSplog(cmd)

			branches, err := eng.BranchNames()
			if err != nil {
				return err
			}

			splog.Info("Available branches:")
			i := 0
			for _, name := range branches {
				if filter != "" && !strings.HasPrefix(name, filter) {
					continue
				}
				i++
				splog.Info("  %d. %s", i, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Filter branches by name prefix (e.g. release/).")

	return cmd
}
