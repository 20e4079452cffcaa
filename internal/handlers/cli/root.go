package cli

import (
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/config"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the minish root command. Running it starts the
// interactive loop on the process's standard streams.
func NewRootCommand(
	version string,
	reader ports.LineReader,
	tokenizer ports.Tokenizer,
	executor ports.ExecutionService,
	cfg config.Config,
) *cobra.Command {
	var (
		promptFlag string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "minish",
		Short: "minish is a minimal interactive shell.",
		Long: `minish reads one line at a time, splits it into tokens, and either runs a
builtin (cd, help, exit) or launches the named program, waiting for it to
finish before prompting again.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if reader == nil || tokenizer == nil || executor == nil {
				return fmt.Errorf("shell not fully initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := cfg.Prompt
			if cmd.Flags().Changed("prompt") {
				prompt = promptFlag
			}
			if noColor || cfg.NoColor {
				color.NoColor = true
			}

			shell := repl.New(reader, tokenizer, executor, cmd.OutOrStdout(), prompt)
			return shell.Run()
		},
	}

	rootCmd.Flags().StringVar(&promptFlag, "prompt", config.DefaultPrompt, "prompt written before each command")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return rootCmd
}
