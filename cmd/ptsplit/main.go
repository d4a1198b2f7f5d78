package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ptsplit/internal/cli"
	"ptsplit/internal/cli/commands"
	"ptsplit/internal/config"
	"ptsplit/internal/exitcodes"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ptsplit",
		Short:         "PHPUnit test-suite splitter",
		Long:          `Splits a PHPUnit tests list into count-balanced suites written into phpunit.xml, so CI can run them on parallel jobs. When PHPUnit fails to collect the tests, the suite is run file by file to find the one that breaks it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults, replaced by the loaded one before a command runs
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, &flags)
	cmds.Register(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		cmds.PrintError(err)
		os.Exit(exitcodes.FromError(err))
	}
}
