package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptsplit/internal/config"
	"ptsplit/internal/phpunitxml"
	"ptsplit/internal/storage"
	"ptsplit/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	viewer    ui.Viewer
	storage   storage.Storage
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, formatter *ui.Formatter, viewer ui.Viewer, st storage.Storage) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		formatter: formatter,
		viewer:    viewer,
		storage:   st,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	if sc.config.Flags.Report {
		report, err := sc.storage.Load()
		if err != nil {
			return fmt.Errorf("no linear fallback report: %w", err)
		}
		sc.formatter.PrintReport(report)
		return nil
	}

	target := sc.config.GetTargetPath()
	if !phpunitxml.IsPrepared(target) {
		return fmt.Errorf("%s contains no split groups", sc.config.TargetFile)
	}

	doc, err := phpunitxml.Load(target, sc.config.ProjectRoot())
	if err != nil {
		return err
	}
	groups := doc.SplitGroups()

	if sc.config.Flags.Plain {
		return sc.formatter.PrintGroups(groups)
	}
	return sc.viewer.View(groups)
}
