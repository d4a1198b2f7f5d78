package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"ptsplit/internal/domain"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(successCount, failCount int) string {
	return color.CyanString("Running units: ") +
		color.GreenString("[passed: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	_ = p.bar.Set(successCount + failCount)
	p.bar.Describe(describe(successCount, failCount))
}

// Clear erases the bar so a line can be printed above it
func (p *ProgressBar) Clear() {
	_ = p.bar.Clear()
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// FallbackReporter streams linear fallback progress to the terminal
type FallbackReporter struct {
	out    io.Writer
	barOut io.Writer
	bar    *ProgressBar
	passed int
	failed int
}

// NewFallbackReporter creates a reporter printing status lines to stdout and the bar to stderr
func NewFallbackReporter() *FallbackReporter {
	return &FallbackReporter{out: color.Output, barOut: os.Stderr}
}

// SetOutput redirects status lines and the progress bar
func (r *FallbackReporter) SetOutput(out, barOut io.Writer) {
	r.out = out
	r.barOut = barOut
}

// Start announces the suite and draws an empty bar
func (r *FallbackReporter) Start(suite string, total int) {
	r.passed, r.failed = 0, 0
	color.New(color.FgCyan).Fprintf(r.out, "Running suite %s linearly (%d units)\n", suite, total)
	if total > 0 {
		r.bar = NewProgressBar(total, r.barOut)
	}
}

// UnitFinished advances the bar; failing units are also printed as a red line
func (r *FallbackReporter) UnitFinished(index int, result domain.TestResult, passed, failed int) {
	if result.Success {
		r.passed++
	} else {
		r.failed++
		if r.bar != nil {
			r.bar.Clear()
		}
		color.New(color.FgRed).Fprintf(r.out, "✗ %d. %s (exit code %d, %d failed)\n", index+1, result.TestPath, result.ExitCode, failed)
	}
	if r.bar != nil {
		r.bar.Update(r.passed, r.failed)
	}
}

// Finish completes the bar and prints how far the run got
func (r *FallbackReporter) Finish(report *domain.FallbackReport) {
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
	if report == nil {
		return
	}
	if report.FirstFailure == nil {
		color.New(color.FgGreen).Fprintf(r.out, "✓ %d/%d units passed individually\n", report.Executed(), report.TotalUnits)
		return
	}
	color.New(color.FgYellow).Fprintf(r.out, "Stopped after %d/%d units\n", report.Executed(), report.TotalUnits)
}
