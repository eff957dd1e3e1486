package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/namecheck/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the most recent stored check report",
		Long:  "View the most recent check report from a reports directory (default " + defaultReportsDir + ").",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsDir(cmd, defaultReportsDir)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
