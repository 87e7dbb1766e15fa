// Package cli provides the command-line interface for the litgen tool.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "litgen",
		Short: "Literal marker generation tools",
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd.Execute()
}
