package execution

import (
	"context"

	"ptsplit/internal/domain"
)

// UnitRunner executes a single test unit and reports how it went
type UnitRunner interface {
	Run(ctx context.Context, unit string) domain.TestResult
}

// Reporter receives the status of a linear fallback run as it progresses
type Reporter interface {
	Start(suite string, total int)
	UnitFinished(index int, result domain.TestResult, passed, failed int)
	Finish(report *domain.FallbackReport)
}

type nopReporter struct{}

func (nopReporter) Start(string, int)                             {}
func (nopReporter) UnitFinished(int, domain.TestResult, int, int) {}
func (nopReporter) Finish(*domain.FallbackReport)                 {}
