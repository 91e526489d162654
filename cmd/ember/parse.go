package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-lang/ember/lexer"
	"github.com/ember-lang/ember/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the resulting syntax tree",
	Long: `Run the parser over a file or an inline expression and print the parsed
program back out in its canonical string form. Parser errors, if any, are
printed to stderr instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseSource,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseSource(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
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

	fmt.Fprintln(os.Stdout, program.String())
	return nil
}
