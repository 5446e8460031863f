package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(stateDirEnv string) *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var formatFlag string
	var jsonFlag bool

	ctx := newCommandContext(&configFlag, &logLevelFlag, stateDirEnv)

	rootCmd := &cobra.Command{
		Use:   "ap-jobs [host ...]",
		Short: "Report pending Autophone jobs, tests, and Treeherder submissions",
		Long: `ap-jobs prints pending work counts from the local Autophone jobs database.

With no arguments it reports on this host. With one or more hostnames it
connects to each host over SSH in order and runs ap-jobs there instead.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runRemoteDispatch(ctx, cmd, args)
			}
			return runLocalReport(ctx, cmd, formatFlag, jsonFlag)
		},
	}

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Override configured log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "plain", "Local report format: plain or table")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the local report as JSON")

	return rootCmd
}
