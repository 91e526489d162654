package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ember-lang/ember/config"
	"github.com/ember-lang/ember/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive ember session",
	Long: `Start a read-eval-print loop. Settings such as the prompt, color output,
history file location, and banner visibility can be customized by placing a
.ember.yaml file in the current directory or your home directory.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	replCfg := repl.Config{
		Prompt:        cfg.REPL.Prompt,
		ColorsEnabled: cfg.REPL.ColorsEnabled(),
		HistoryFile:   cfg.REPL.HistoryFile,
		ShowBanner:    cfg.REPL.BannerEnabled(),
	}

	return repl.Start(os.Stdin, os.Stdout, replCfg)
}
