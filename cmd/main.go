// Package main provides the CLI entrypoint for cfpurge. It wires subcommands
// (purge, version), loads configuration from the environment, and initializes
// logging.
package main

import (
	"cfpurge/internal/config"
	"cfpurge/pkg/logger"
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cfpurge",
		Short: "Purge the Cloudflare CDN cache of a zone",
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Echo API requests and responses")

	// there is no way to access flags before command execution in cobra,
	// and the logger must exist before any subcommand runs. The raw
	// arguments are scanned for the verbose switch instead.
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration: ", err)
	}

	logger.Setup(cfg.Environment, verbose)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		purgeCommand(cfg),
		versionCommand(),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
