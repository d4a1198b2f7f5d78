package execution

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
	"ptsplit/internal/parser"
	"ptsplit/internal/phpunitxml"
)

// LinearFallback runs the files of a test suite one at a time to find the one
// that breaks PHPUnit's test collection
type LinearFallback struct {
	config   *config.Config
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	runner   UnitRunner
	parser   parser.Parser
	reporter Reporter
	logger   *zap.Logger
}

// NewLinearFallback creates a new LinearFallback
func NewLinearFallback(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, runner UnitRunner, phpUnitParser parser.Parser, logger *zap.Logger) *LinearFallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinearFallback{
		config:   cfg,
		scanner:  scanner,
		filter:   filter,
		runner:   runner,
		parser:   phpUnitParser,
		reporter: nopReporter{},
		logger:   logger,
	}
}

// SetReporter sets the reporter receiving per-unit status
func (lf *LinearFallback) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = nopReporter{}
	}
	lf.reporter = reporter
}

// Units lists the test files of a suite in the base configuration, relative to
// the project root and in configuration order
func (lf *LinearFallback) Units(suite string) ([]string, error) {
	root := lf.config.ProjectRoot()
	doc, err := phpunitxml.Load(lf.config.GetTemplatePath(), root)
	if err != nil {
		return nil, err
	}
	entries, err := doc.SuiteEntries(suite)
	if err != nil {
		return nil, err
	}

	abs := func(path string) string {
		if filepath.IsAbs(path) {
			return filepath.Clean(path)
		}
		return filepath.Join(root, path)
	}
	excluded := func(path string) bool {
		for _, ex := range entries.Excludes {
			ex = abs(ex)
			if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	var units []string
	seen := make(map[string]bool)
	add := func(path string) {
		if seen[path] || excluded(path) {
			return
		}
		seen[path] = true
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			units = append(units, rel)
			return
		}
		units = append(units, path)
	}

	for _, dir := range entries.Directories {
		suffix := dir.Suffix
		if suffix == "" {
			suffix = lf.config.TestFileSuffix
		}
		files, err := lf.scanner.WithSuffix(suffix).Scan(abs(dir.Path))
		if err != nil {
			// PHPUnit itself skips suite directories that do not exist
			lf.logger.Warn("skipping suite directory", zap.String("directory", dir.Path), zap.Error(err))
			continue
		}
		for _, file := range files {
			add(file)
		}
	}
	for _, file := range entries.Files {
		add(abs(file))
	}

	return lf.filter.FilterByName(units, lf.config.Flags.NameFilter), nil
}

// Run executes the suite's units serially. Each unit is waited for before the next
// starts, and the run stops at the first failing unit, which becomes the report's
// FirstFailure.
func (lf *LinearFallback) Run(ctx context.Context, suite string) (*domain.FallbackReport, error) {
	units, err := lf.Units(suite)
	if err != nil {
		return nil, fmt.Errorf("list units of suite %s: %w", suite, err)
	}

	report := &domain.FallbackReport{
		Suite:      suite,
		TotalUnits: len(units),
		Results:    make([]domain.TestResult, 0, len(units)),
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	lf.logger.Info("running suite in linear fallback mode", zap.String("suite", suite), zap.Int("units", len(units)))
	lf.reporter.Start(suite, len(units))

	for i, unit := range units {
		if err := ctx.Err(); err != nil {
			lf.reporter.Finish(report)
			return report, err
		}

		result := lf.runner.Run(ctx, unit)
		if err := ctx.Err(); err != nil {
			// The unit was killed, its result says nothing about the unit itself
			lf.logger.Info("linear fallback interrupted", zap.String("unit", unit), zap.Int("position", i+1))
			lf.reporter.Finish(report)
			return report, err
		}
		passed, failed := lf.parser.ParseTestCounts(result)
		lf.reporter.UnitFinished(i, result, passed, failed)

		if result.Success {
			result.Output = ""
			report.Results = append(report.Results, result)
			continue
		}

		report.Results = append(report.Results, result)
		failure := lf.parser.ParseFailure(result)
		report.FirstFailure = &failure
		lf.logger.Info("unit failed in linear fallback",
			zap.String("unit", unit),
			zap.Int("exit_code", result.ExitCode),
			zap.Int("position", i+1))
		break
	}

	lf.reporter.Finish(report)
	return report, nil
}
