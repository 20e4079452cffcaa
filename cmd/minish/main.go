package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/minish/internal/adapters/builtins"
	"github.com/AntonioJCosta/minish/internal/adapters/launcher"
	"github.com/AntonioJCosta/minish/internal/adapters/linereader"
	"github.com/AntonioJCosta/minish/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/minish/internal/core/domain/config"
	"github.com/AntonioJCosta/minish/internal/core/services/execution"
	"github.com/AntonioJCosta/minish/internal/handlers/cli"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	reader := linereader.New(os.Stdin)
	splitter := tokenizer.New()
	registry := builtins.NewRegistry(os.Stdout, os.Stderr)
	procLauncher := launcher.New(os.Stdin, os.Stdout, os.Stderr)

	// The config file is optional; anything wrong with it downgrades to the
	// defaults with a warning.
	cfg := config.Default()
	configProvider, err := shellconfig.NewConfigAccessor()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: Could not locate config file: %v. Continuing with defaults.", err)))
	} else {
		cfg, err = configProvider.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: Could not load config: %v. Continuing with defaults.", err)))
			cfg = config.Default()
		}
	}

	executionSvc := execution.NewService(registry, procLauncher, splitter, cfg.AliasMap(), os.Stderr)
	rootCmd := cli.NewRootCommand(Version, reader, splitter, executionSvc, cfg)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
