package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfprof",
		Short: "perfprof - performance profiles for solver benchmarks",
		Long: `perfprof aggregates collected benchmark measurements into comparative
performance profiles.

For each solver configuration it computes, per problem instance, the ratio of
its cost to the best configuration observed on that instance, and derives
curve data plus a plain-language analysis of robustness and relative speed.
It never runs benchmarks itself; it only aggregates result files that a
benchmark runner has already produced.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newProfileCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newListCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
