package parser

import "ptsplit/internal/domain"

// Parser reads the outcome of a test unit from its result
type Parser interface {
	ParseTestCounts(result domain.TestResult) (passed, failed int)
	ParseFailure(result domain.TestResult) domain.TestFailure
}
