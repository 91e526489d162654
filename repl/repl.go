package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ember-lang/ember/evaluator"
	"github.com/ember-lang/ember/lexer"
	"github.com/ember-lang/ember/object"
	"github.com/ember-lang/ember/parser"
)

const DefaultPrompt = "ember» "

const Banner = `
   ____                _
  / __/_ _  ___  ___ ___/ / _ \
  _\ \/  ' \/ _ \/ -_) __/  __/
 /___/_/_/_/_.__/\__/_/  \___/
`

// Color definitions for REPL output, following the same scheme a colored REPL in this
// ecosystem typically uses: blue for chrome, green for the banner, yellow for results,
// red for errors.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

// Config controls the cosmetic and behavioral knobs of a REPL session; it is filled in
// from the ember config package before Start is called.
type Config struct {
	Prompt        string
	ColorsEnabled bool
	HistoryFile   string
	ShowBanner    bool
}

// DefaultConfig returns the REPL's built-in settings: the default prompt, colors and banner
// on, and no history file.
func DefaultConfig() Config {
	return Config{
		Prompt:        DefaultPrompt,
		ColorsEnabled: true,
		HistoryFile:   "",
		ShowBanner:    true,
	}
}

// Start runs the read-eval-print loop against in/out using cfg for its cosmetics. Every
// binding made at the prompt lives in one Environment for the life of the session, so
// `let` statements accumulate exactly like they would inside a function body.
func Start(in io.Reader, out io.Writer, cfg Config) error {
	if cfg.ShowBanner {
		printBanner(out, cfg)
	}

	rlConfig := &readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	}
	if in != os.Stdin {
		rlConfig.Stdin = io.NopCloser(in)
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	evaluator.SetOutput(out)
	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "bye.")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		evalLine(out, line, env, cfg.ColorsEnabled)
	}
}

func evalLine(out io.Writer, line string, env *object.Environment, colorsEnabled bool) {
	l := lexer.New(line)
	p := parser.New(l)

	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		printParserErrors(out, p.Errors(), colorsEnabled)
		return
	}

	evaluated := evaluator.Eval(program, env)
	if evaluated == nil {
		return
	}

	if colorsEnabled {
		if evaluated.Type() == object.ERROR_OBJ {
			redColor.Fprintln(out, evaluated.Inspect())
			return
		}
		yellowColor.Fprintln(out, evaluated.Inspect())
		return
	}

	fmt.Fprintln(out, evaluated.Inspect())
}

func printBanner(out io.Writer, cfg Config) {
	if cfg.ColorsEnabled {
		greenColor.Fprintln(out, Banner)
		blueColor.Fprintln(out, "type an expression, or Ctrl-D to quit")
		return
	}
	fmt.Fprintln(out, Banner)
	fmt.Fprintln(out, "type an expression, or Ctrl-D to quit")
}

func printParserErrors(out io.Writer, errors []string, colorsEnabled bool) {
	for _, msg := range errors {
		if colorsEnabled {
			redColor.Fprintln(out, "  "+msg)
			continue
		}
		fmt.Fprintln(out, "  "+msg)
	}
}
