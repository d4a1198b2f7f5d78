package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ptsplit/internal/config"
	"ptsplit/internal/split"
	"ptsplit/internal/ui"
)

// Named lists produced by `phpunit --list-tests-xml` for the two main suites
var namedLists = map[string]string{
	"default":    "tests-list-default.xml",
	"extensions": "tests-list-extensions.xml",
}

// SplitCommand handles the split command
type SplitCommand struct {
	config    *config.Config
	manager   *split.Manager
	formatter *ui.Formatter
}

// NewSplitCommand creates a new SplitCommand
func NewSplitCommand(cfg *config.Config, manager *split.Manager, formatter *ui.Formatter) *SplitCommand {
	return &SplitCommand{
		config:    cfg,
		manager:   manager,
		formatter: formatter,
	}
}

// ListFor maps the split argument to a tests list and the suite to fall back on.
// Custom lists have no suite.
func ListFor(arg string) (testsList, suite string) {
	if list, ok := namedLists[arg]; ok {
		return list, arg
	}
	return arg, ""
}

// Execute runs the command
func (sc *SplitCommand) Execute(cmd *cobra.Command, args []string) error {
	testsList, suite := ListFor(args[0])

	plan, err := sc.manager.Split(cmd.Context(), testsList, suite, sc.config.Groups)
	if report := sc.manager.Report(); report != nil {
		sc.formatter.PrintReport(report)
	}
	if err != nil {
		return err
	}

	if plan == nil {
		color.Yellow("%s already contains split groups, nothing to do", sc.config.TargetFile)
		return nil
	}
	return sc.formatter.PrintPlan(plan)
}
