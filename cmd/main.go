// Package main provides the entry point for the gridiron CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridiron",
		Short: "Gridiron - football play event aggregation",
		Long: `Gridiron aggregates raw play events into per-player weekly
statistics backed by a SQLite season snapshot.

Commands:
  aggregate  Aggregate a season snapshot into summary rows
  seed       Generate a synthetic season snapshot`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAggregateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "gridiron %s\n", version)
		},
	}
}
