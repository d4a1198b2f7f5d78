package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
)

// GroupViewer browses the split groups of a generated phpunit.xml
type GroupViewer struct {
	config *config.Config
	parser *discovery.Parser
}

// NewGroupViewer creates a new GroupViewer
func NewGroupViewer(cfg *config.Config, parser *discovery.Parser) *GroupViewer {
	return &GroupViewer{
		config: cfg,
		parser: parser,
	}
}

// View displays groups in an interactive TUI
func (gv *GroupViewer) View(groups []domain.Group) error {
	if len(groups) == 0 {
		color.Yellow("No split groups found in %s", gv.config.GetTargetPath())
		return nil
	}

	app := tview.NewApplication()

	// Groups on the left
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, g := range groups {
		list.AddItem(gv.listItemText(g), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	// Files of the selected group on the right
	filesView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(filesView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	total := 0
	for _, g := range groups {
		total += len(g.Files)
	}
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Split groups (%d groups, %d files) | Use ↑↓ to navigate, → to scroll files, ← to go back, Ctrl+C to exit ", len(groups), total))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(groups) {
			statsView.SetText(gv.formatGroupStats(groups[index]))
			filesView.SetText(gv.formatGroupFiles(groups[index])).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(filesView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	filesView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (gv *GroupViewer) listItemText(g domain.Group) string {
	if len(g.Files) == 0 {
		return fmt.Sprintf("[gray]%s (empty)[white]", g.Name)
	}
	return fmt.Sprintf("[yellow]%s[white] (%d)", g.Name, len(g.Files))
}

// formatGroupStats formats the header line of a group using tview color tags
func (gv *GroupViewer) formatGroupStats(g domain.Group) string {
	stats := fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]files:[white] %d", g.Name, len(g.Files))
	if gv.config.Flags.TestCases {
		cases := 0
		for _, file := range g.Files {
			if found, err := gv.parser.FindTestCases(absoluteTo(gv.config.ProjectRoot(), file)); err == nil {
				cases += len(found)
			}
		}
		stats += fmt.Sprintf("  [cyan]test cases:[white] %d", cases)
	}
	return stats + "\n"
}

// formatGroupFiles lists a group's files, numbered, relative to the project root
func (gv *GroupViewer) formatGroupFiles(g domain.Group) string {
	if len(g.Files) == 0 {
		return "[gray](no files)[white]"
	}
	var builder strings.Builder
	for i, file := range g.Files {
		fmt.Fprintf(&builder, "[yellow]%3d.[white] %s\n", i+1, relativeTo(gv.config.ProjectRoot(), file))
	}
	return builder.String()
}
