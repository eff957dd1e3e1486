// Package cmd provides the root command and CLI setup for namecheck.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/namecheck/internal/adapter"
	"github.com/mouse-blink/namecheck/internal/config"
	"github.com/mouse-blink/namecheck/internal/controller"
	"github.com/mouse-blink/namecheck/internal/domain"
	m "github.com/mouse-blink/namecheck/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var watcher adapter.ChangeWatcher
var workflow domain.Workflow
var ui adapter.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	watcher = adapter.NewLocalWatcher()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		watcher,
		ui,
	)
}

// defaultReportsDir is where view looks when no reports directory is configured.
const defaultReportsDir = ".namecheck-reports"

var configFlag string
var verboseFlag bool
var reportsFlag string
var excludeFlags []string
var excludeDirFlags []string
var parallelFlag int
var freeFunctionsFlag bool

// cfg is resolved before every command runs.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namecheck [paths...]",
		Short: "Unreal Engine C++ naming convention checker",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd)

			resolved, err := config.Resolve(configFlag)
			if err != nil {
				return err
			}

			cfg = resolved
			slog.Debug("configuration resolved", "config", configFlag, "extensions", cfg.Extensions)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(buildCheckArgs(cmd, args))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a TOML config file (default "+config.DefaultPath+" when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&reportsFlag, "reports", "", "directory check runs are stored in and view reads from")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files whose name matches the glob (can be repeated)")
	cmd.PersistentFlags().StringArrayVar(&excludeDirFlags, "exclude-dir", nil, "skip directories whose name matches the glob (can be repeated)")
	addCheckFlags(cmd)

	return cmd
}

// addCheckFlags registers the flags shared by every command that runs a check.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files scanned concurrently")
	cmd.Flags().BoolVar(&freeFunctionsFlag, "free-functions", false, "also check functions declared outside a class")
}

const rootLongDescription = `namecheck checks C++ sources against the Unreal Engine naming conventions:
class and struct names carry a type prefix (A, U, F, E, I), functions and
member variables are PascalCase, locals are camelCase and booleans start
with b.

Directories are scanned recursively. Go-style path patterns are accepted:
  - ./...             scan the current directory
  - ./Source/...      scan the Source directory (same as ./Source)
  - ./Source Foo.h    scan a directory and a single file

The exit status is 1 when any naming error is found.`

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if !errors.Is(err, domain.ErrViolationsFound) {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	os.Exit(1)
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func buildListArgs(args []string) domain.ListArgs {
	return domain.ListArgs{
		Paths:        parsePaths(args),
		Extensions:   cfg.Extensions,
		ExcludeDirs:  append(append([]string(nil), cfg.Exclude.Dirs...), excludeDirFlags...),
		ExcludeFiles: append(append([]string(nil), cfg.Exclude.Files...), excludeFlags...),
	}
}

// buildCheckArgs layers flags the user set explicitly over the config file.
func buildCheckArgs(cmd *cobra.Command, args []string) domain.CheckArgs {
	policy := cfg.Policy()
	if cmd.Flags().Changed("free-functions") {
		policy.CheckFreeFunctions = freeFunctionsFlag
	}

	threads := cfg.Parallel
	if cmd.Flags().Changed("parallel") {
		threads = parallelFlag
	}

	return domain.CheckArgs{
		ListArgs: buildListArgs(args),
		Policy:   policy,
		Threads:  threads,
		Reports:  reportsDir(cmd, ""),
	}
}

// reportsDir returns the --reports flag, the configured directory, or fallback.
func reportsDir(cmd *cobra.Command, fallback string) m.Path {
	if cmd.Flags().Changed("reports") {
		return m.Path(reportsFlag)
	}

	if cfg.Reports != "" {
		return m.Path(cfg.Reports)
	}

	return m.Path(fallback)
}
