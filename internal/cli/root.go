// Package cli provides the command-line interface for func-analyzer.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "funcanalyzer",
		Short:        "Normalize type annotations and document function parameters",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newNormalizeCommand(), newParamsCommand(), newAnalyzeCommand())

	return rootCmd
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
