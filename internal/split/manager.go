package split

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
	"ptsplit/internal/phpunitxml"
	"ptsplit/internal/resolver"
	"ptsplit/internal/storage"
	"ptsplit/internal/suite"
	"ptsplit/internal/testlist"
)

// Fallback runs a suite one unit at a time
type Fallback interface {
	Run(ctx context.Context, suite string) (*domain.FallbackReport, error)
}

// Manager drives a split run from the tests list to the written phpunit.xml
type Manager struct {
	config     *config.Config
	loader     *testlist.Loader
	scanner    *discovery.Scanner
	namespaces resolver.NamespaceReader
	builder    *suite.Builder
	composer   *phpunitxml.Composer
	fallback   Fallback
	storage    storage.Storage
	logger     *zap.Logger

	state  State
	report *domain.FallbackReport
}

// NewManager creates a new Manager
func NewManager(
	cfg *config.Config,
	loader *testlist.Loader,
	scanner *discovery.Scanner,
	namespaces resolver.NamespaceReader,
	builder *suite.Builder,
	composer *phpunitxml.Composer,
	fallback Fallback,
	st storage.Storage,
	logger *zap.Logger,
) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		config:     cfg,
		loader:     loader,
		scanner:    scanner,
		namespaces: namespaces,
		builder:    builder,
		composer:   composer,
		fallback:   fallback,
		storage:    st,
		logger:     logger,
		state:      StateStart,
	}
}

// State returns the state the last run ended in
func (m *Manager) State() State {
	return m.state
}

// Report returns the linear fallback report of the last run, if one ran
func (m *Manager) Report() *domain.FallbackReport {
	return m.report
}

func (m *Manager) transition(to State) {
	m.logger.Debug("split state transition",
		zap.Stringer("from", m.state),
		zap.Stringer("to", to))
	m.state = to
}

func (m *Manager) abort(err error) error {
	m.transition(StateAbort)
	return err
}

// Split turns a tests list into groups and writes them to the target phpunit.xml.
// groups counts the special case group, so groups-1 balanced groups are built.
// When PHPUnit failed to collect the tests and suite is set, the suite is run
// linearly to find the offending file; the CollectorError is still returned.
// A nil plan without error means the target was already prepared and SkipPrepared is set.
func (m *Manager) Split(ctx context.Context, testsList, suiteName string, groups int) (*domain.SplitPlan, error) {
	m.state = StateStart
	m.report = nil

	if groups < 2 {
		return nil, m.abort(domain.NewSuiteGenerationError(
			fmt.Sprintf("at least 2 groups are required, got %d", groups), nil))
	}

	target := m.config.GetTargetPath()
	if m.config.Flags.SkipPrepared && m.composer.IsPrepared(target) {
		m.logger.Info("target already prepared, skipping", zap.String("target", target))
		m.transition(StateDone)
		return nil, nil
	}

	listPath := m.config.GetTestsListPath(testsList)
	descriptors, err := m.loader.Load(listPath)
	if err != nil {
		return nil, m.abort(err)
	}
	m.logger.Debug("loaded tests list", zap.String("path", listPath), zap.Int("descriptors", len(descriptors)))
	m.transition(StateLoaded)

	index, err := m.scanner.WithExcludedFiles(m.config.FilesToExclude).ScanIndex(m.config.ProjectRoot())
	if err != nil {
		return nil, m.abort(fmt.Errorf("scan project: %w", err))
	}
	m.logger.Debug("indexed project files", zap.Int("base_names", len(index)), zap.Int("files", index.Files()))
	m.transition(StateScanned)

	r := resolver.New(index, m.namespaces, resolver.ExpectedMissingClasses, resolver.CollectorSentinel, m.config.SourceExtension, m.logger)
	resolution, err := r.Resolve(descriptors)
	if err != nil {
		if domain.IsCollectorError(err) && suiteName != "" {
			return nil, m.abort(m.runFallback(ctx, suiteName, err))
		}
		return nil, m.abort(err)
	}
	m.transition(StateResolved)

	built, err := m.builder.Build(resolution.Tests, groups-1)
	if err != nil {
		return nil, m.abort(err)
	}
	m.transition(StatePartitioned)

	special, err := m.composer.Compose(built, target)
	if err != nil {
		return nil, m.abort(err)
	}
	m.transition(StateComposed)

	m.logger.Info("split complete",
		zap.Int("files", len(resolution.Tests)),
		zap.Int("groups", groups),
		zap.Int("skipped", len(resolution.Skipped)),
		zap.Int("duplicates", len(resolution.Duplicates)),
		zap.String("target", target))
	m.transition(StateDone)

	return &domain.SplitPlan{
		Groups:      built,
		SpecialCase: special,
		Skipped:     resolution.Skipped,
		Duplicates:  resolution.Duplicates,
		Target:      target,
	}, nil
}

// runFallback runs the suite linearly and saves its report. The collector
// error is always part of the returned error.
func (m *Manager) runFallback(ctx context.Context, suiteName string, collectorErr error) error {
	m.transition(StateFallback)
	m.logger.Warn("test collector failed, running suite linearly", zap.String("suite", suiteName))

	report, err := m.fallback.Run(ctx, suiteName)
	m.report = report
	errs := []error{collectorErr}
	if err != nil {
		errs = append(errs, fmt.Errorf("linear fallback: %w", err))
	}
	if report != nil && m.storage != nil {
		if err := m.storage.Save(report); err != nil {
			errs = append(errs, fmt.Errorf("save fallback report: %w", err))
		}
	}
	return errors.Join(errs...)
}
