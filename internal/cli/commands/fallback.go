package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptsplit/internal/config"
	"ptsplit/internal/execution"
	"ptsplit/internal/storage"
	"ptsplit/internal/ui"
)

// FallbackCommand handles the fallback command
type FallbackCommand struct {
	config    *config.Config
	fallback  *execution.LinearFallback
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewFallbackCommand creates a new FallbackCommand
func NewFallbackCommand(cfg *config.Config, fallback *execution.LinearFallback, st storage.Storage, formatter *ui.Formatter) *FallbackCommand {
	return &FallbackCommand{
		config:    cfg,
		fallback:  fallback,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. Finding a failing unit is reported as an error.
func (fc *FallbackCommand) Execute(cmd *cobra.Command, args []string) error {
	suite := args[0]

	report, err := fc.fallback.Run(cmd.Context(), suite)
	if report != nil {
		if saveErr := fc.storage.Save(report); saveErr != nil {
			return fmt.Errorf("failed to save fallback report: %w", saveErr)
		}
		fc.formatter.PrintReport(report)
	}
	if err != nil {
		return err
	}

	if report.FirstFailure != nil {
		return fmt.Errorf("unit %s fails on its own", report.FirstFailure.FilePath)
	}
	return nil
}
