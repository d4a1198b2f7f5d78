package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptsplit/internal/config"
	"ptsplit/internal/phpunitxml"
	"ptsplit/internal/ui"
)

// StatusCommand handles the status command
type StatusCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(cfg *config.Config, formatter *ui.Formatter) *StatusCommand {
	return &StatusCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *StatusCommand) Execute(cmd *cobra.Command, args []string) error {
	target := sc.config.GetTargetPath()
	if !phpunitxml.IsPrepared(target) {
		return fmt.Errorf("%s contains no split groups, run `ptsplit split default` first", sc.config.TargetFile)
	}

	doc, err := phpunitxml.Load(target, sc.config.ProjectRoot())
	if err != nil {
		return err
	}
	groups := doc.SplitGroups()
	files := 0
	for _, g := range groups {
		files += len(g.Files)
	}
	color.Green("✓ %s is prepared: %d groups, %d files", sc.config.TargetFile, len(groups), files)
	return nil
}
