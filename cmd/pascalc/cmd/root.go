// Package cmd wires the pascalc subcommands onto a cobra root command.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pascalc",
	Short: "Scanner and parser front end for a Pascal dialect",
	Long: `pascalc exposes the scanner and recursive-descent parser as a
standalone command-line tool, without an evaluator or code generator
behind it.

Use "lex" to see the raw token stream and "parse" to see the resulting
abstract syntax tree.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
