package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ptsplit/internal/domain"
)

// maxMessageLines bounds the message kept for a failure without a recognizable report
const maxMessageLines = 20

var (
	okPattern       = regexp.MustCompile(`OK\s*\(\s*(\d+)\s+tests?`)
	testsPattern    = regexp.MustCompile(`Tests:\s*(\d+)`)
	failuresPattern = regexp.MustCompile(`Failures:\s*(\d+)`)
	errorsPattern   = regexp.MustCompile(`Errors:\s*(\d+)`)
	reportPattern   = regexp.MustCompile(`(?m)^There (?:was|were) \d+ (?:error|failure)s?:\s*$`)
	fatalPattern    = regexp.MustCompile(`(?m)^(?:PHP )?(?:Fatal error|Parse error|Warning|Error):.*$`)
)

// PHPUnitParser parses PHPUnit test output
type PHPUnitParser struct{}

var _ Parser = (*PHPUnitParser)(nil)

// NewPHPUnitParser creates a new PHPUnitParser
func NewPHPUnitParser() *PHPUnitParser {
	return &PHPUnitParser{}
}

func atoi(match []string) int {
	if len(match) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(match[1])
	return n
}

// ParseTestCounts extracts passed and failed test case counts from PHPUnit output.
// Returns (passed, failed). If parsing fails, returns (1,0) for success or (0,1) for failure (file-level fallback).
func (p *PHPUnitParser) ParseTestCounts(result domain.TestResult) (passed, failed int) {
	output := result.Output

	// OK (N tests, ...) - all passed
	if match := okPattern.FindStringSubmatch(output); match != nil {
		return atoi(match), 0
	}

	// FAILURES! or ERRORS! - Tests: N, Assertions: ..., Failures: F, Errors: E
	total := atoi(testsPattern.FindStringSubmatch(output))
	failed = atoi(failuresPattern.FindStringSubmatch(output)) + atoi(errorsPattern.FindStringSubmatch(output))
	if total >= failed {
		passed = total - failed
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one "test" per file
	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailure summarizes a failed unit: its counts and the first error report
// PHPUnit printed, or the PHP error that stopped it from running at all
func (p *PHPUnitParser) ParseFailure(result domain.TestResult) domain.TestFailure {
	passed, failed := p.ParseTestCounts(result)
	return domain.TestFailure{
		FilePath: result.TestPath,
		ExitCode: result.ExitCode,
		Passed:   passed,
		Failed:   failed,
		Message:  p.message(result),
	}
}

func (p *PHPUnitParser) message(result domain.TestResult) string {
	output := strings.ReplaceAll(result.Output, "\r\n", "\n")

	if loc := reportPattern.FindStringIndex(output); loc != nil {
		// The report runs until the summary line
		report := output[loc[0]:]
		for _, end := range []string{"\nFAILURES!", "\nERRORS!"} {
			if i := strings.Index(report, end); i >= 0 {
				report = report[:i]
			}
		}
		return strings.TrimSpace(report)
	}

	if match := fatalPattern.FindString(output); match != "" {
		return strings.TrimSpace(match)
	}

	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxMessageLines {
		lines = lines[len(lines)-maxMessageLines:]
	}
	if len(lines) == 0 && result.Error != nil {
		return result.Error.Error()
	}
	return strings.Join(lines, "\n")
}
