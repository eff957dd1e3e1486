package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List the C++ source files a check would scan.

Paths, extensions and excludes are resolved exactly as for a check run, so
the output shows what the config file and --exclude/--exclude-dir select.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the source files that would be checked",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(buildListArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
