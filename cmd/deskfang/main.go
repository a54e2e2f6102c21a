// Package main provides the entry point for the deskfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/deskfang/cmd/deskfang/commands"
	"github.com/Sumatoshi-tech/deskfang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskfang",
		Short: "Deskfang Support Dump Analysis - migration planning tool",
		Long: `Deskfang analyzes support-platform data dumps for migration planning.

Commands:
  analyze   Aggregate ticket, user and organization statistics into a JSON summary
  validate  Validate a previously written analysis result against the report schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands.
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
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
			fmt.Fprintf(os.Stdout, "deskfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
