package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-lang/ember/lexer"
	"github.com/ember-lang/ember/token"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the resulting tokens",
	Long: `Run the lexer over a file or an inline expression and print one token per
line, in the form TYPE "LITERAL". Useful for inspecting how a piece of source
gets tokenized without involving the parser at all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexSource(_ *cobra.Command, args []string) error {
	input, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(os.Stdout, "%-12s %q\n", tok.Type, tok.Literal)
	}

	return nil
}
