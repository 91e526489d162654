package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-lang/ember/evaluator"
	"github.com/ember-lang/ember/lexer"
	"github.com/ember-lang/ember/object"
	"github.com/ember-lang/ember/parser"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an ember script or expression",
	Long: `Execute an ember program from a file or an inline expression.

Examples:
  # Run a script file
  ember run script.ember

  # Evaluate an inline expression
  ember run -e "puts(1 + 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(runEvalExpr, args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "ember: running %s (%d bytes)\n", filename, len(input))
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("parsing %s failed with %d error(s)", filename, len(p.Errors()))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "ember: parsed %d top-level statement(s):\n%s\n", len(program.Statements), program.String())
	}

	evaluator.SetOutput(os.Stdout)
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result != nil && result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return fmt.Errorf("execution of %s failed", filename)
	}

	return nil
}

// readSource picks an input source for run/lex/parse: an inline -e expression takes
// priority, then a single file argument, and finally an error if neither was given.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}

	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}

	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
