package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/namecheck/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

const watchLongDescription = `Check the given paths, then keep watching them and check again whenever
a matching source file is written, created, removed or renamed.

Changes are batched until the tree has been quiet for the configured
debounce period ([watch] debounce, default 500ms). Stop with Ctrl+C.`

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-check sources whenever they change",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				CheckArgs: buildCheckArgs(cmd, args),
				Debounce:  cfg.Watch.Debounce,
			})
		},
	}
	addCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
