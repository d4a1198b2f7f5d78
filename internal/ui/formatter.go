package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    color.Output,
	}
}

// SetOutput redirects everything the formatter prints
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintPlan prints the groups of a finished split and what was left out of them
func (f *Formatter) PrintPlan(plan *domain.SplitPlan) error {
	groups := append(append([]domain.Group{}, plan.Groups...), plan.SpecialCase)
	if err := f.PrintGroups(groups); err != nil {
		return err
	}

	for _, d := range plan.Skipped {
		color.New(color.FgYellow).Fprintf(f.out, "- skipped %s (expected to have no file)\n", d.FullyQualifiedName)
	}
	for _, d := range plan.Duplicates {
		color.New(color.FgYellow).Fprintf(f.out, "- %s shares %s with %s, listed once\n",
			d.Descriptor.FullyQualifiedName, f.relative(d.File), d.Owner.FullyQualifiedName)
	}
	color.New(color.FgGreen).Fprintf(f.out, "✓ Wrote %d test file(s) in %d group(s) to %s\n",
		plan.TotalFiles()+len(plan.SpecialCase.Files), len(groups), f.relative(plan.Target))
	return nil
}

// PrintGroups prints a table with one row per group. With the TestCases flag
// set, a column with the number of test cases per group is added.
func (f *Formatter) PrintGroups(groups []domain.Group) error {
	withCases := f.config.Flags.TestCases

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetStyle(table.StyleLight)
	header := table.Row{"Group", "Files", "First file"}
	if withCases {
		header = append(header, "Test cases")
	}
	t.AppendHeader(header)

	total, totalCases := 0, 0
	for _, g := range groups {
		first := ""
		if len(g.Files) > 0 {
			first = f.relative(g.Files[0])
		}
		row := table.Row{g.Name, len(g.Files), first}
		if withCases {
			cases, err := f.CountTestCases(g.Files)
			if err != nil {
				return err
			}
			totalCases += cases
			row = append(row, cases)
		}
		total += len(g.Files)
		t.AppendRow(row)
	}

	footer := table.Row{"Total", total, ""}
	if withCases {
		footer = append(footer, totalCases)
	}
	t.AppendFooter(footer)
	t.Render()
	return nil
}

// PrintGroupFiles lists every file of every group as a tree
func (f *Formatter) PrintGroupFiles(groups []domain.Group) {
	for _, g := range groups {
		color.New(color.FgCyan).Fprintf(f.out, "%s (%d)\n", g.Name, len(g.Files))
		for i, file := range g.Files {
			connector := "├── "
			if i == len(g.Files)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s\n", connector, f.relative(file))
		}
	}
}

// PrintReport prints the outcome of a linear fallback run
func (f *Formatter) PrintReport(report *domain.FallbackReport) {
	color.New(color.FgCyan).Fprintf(f.out, "Linear fallback of suite %s: %d/%d units executed\n",
		report.Suite, report.Executed(), report.TotalUnits)

	if report.FirstFailure == nil {
		color.New(color.FgGreen).Fprintln(f.out, "✓ Every unit passes on its own; the collector error comes from combining them")
		return
	}

	failure := report.FirstFailure
	color.New(color.FgRed).Fprintf(f.out, "✗ First failing unit: %s (exit code %d)\n", failure.FilePath, failure.ExitCode)
	if failure.Message != "" {
		fmt.Fprintln(f.out, failure.Message)
	}
	color.New(color.FgYellow).Fprintf(f.out, "Report saved to %s\n", f.relative(f.config.GetOutputPath()))
}

// PrintError prints an error with the detail an operator needs to fix it
func (f *Formatter) PrintError(err error) {
	color.New(color.FgRed).Fprintf(f.out, "Error: %v\n", err)

	var ambiguous *domain.AmbiguousNamespaceError
	var unlocated *domain.UnlocatedTestError
	var collector *domain.CollectorError
	var missing *domain.TestListMissingError

	switch {
	case errors.As(err, &ambiguous):
		t := table.NewWriter()
		t.SetOutputMirror(f.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Candidate", "Declared namespace"})
		for _, c := range ambiguous.Candidates {
			ns := strings.Join(c.Namespace, "\\")
			if ns == "" {
				ns = "<global>"
			}
			t.AppendRow(table.Row{f.relative(c.Path), ns})
		}
		t.Render()
		color.New(color.FgYellow).Fprintf(f.out, "Expected namespace %s for class %s\n",
			ambiguous.Descriptor.NamespaceString(), ambiguous.Descriptor.ClassName)
	case errors.As(err, &unlocated):
		color.New(color.FgYellow).Fprintf(f.out, "No file named %s under %s\n",
			unlocated.BaseName, f.config.ProjectRoot())
	case errors.As(err, &collector):
		color.New(color.FgYellow).Fprintln(f.out, "Run `ptsplit fallback <suite>` to find the file PHPUnit fails to load")
	case errors.As(err, &missing):
		color.New(color.FgYellow).Fprintln(f.out, "Generate it with `vendor/bin/phpunit --list-tests-xml <file>`")
	}
}

// CountTestCases returns the total number of test cases across the given test files.
// Files that do not exist count as zero.
func (f *Formatter) CountTestCases(tests []string) (int, error) {
	var total int
	for _, test := range tests {
		cases, err := f.parser.FindTestCases(absoluteTo(f.config.ProjectRoot(), test))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return 0, err
		}
		total += len(cases)
	}
	return total, nil
}

func (f *Formatter) relative(path string) string {
	return relativeTo(f.config.ProjectRoot(), path)
}

// absoluteTo resolves group paths, which are written relative to the project root
func absoluteTo(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, filepath.FromSlash(path))
}

// relativeTo shortens paths under root for display
func relativeTo(root, path string) string {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}
