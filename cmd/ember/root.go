package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "ember is a small expression-oriented scripting language",
	Long: `ember is a tree-walking interpreter for a small, dynamically-typed,
expression-oriented scripting language: integers, booleans, strings, arrays,
hashes, first-class functions with closures, and a handful of built-ins.

Run a script, drop into the REPL, or inspect how the lexer and parser see
a piece of source.`,
	Version: "0.1.0",
	RunE:    runRepl,
}

// Execute runs the root command and is the only thing main() calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
