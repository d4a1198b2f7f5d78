package domain

import "time"

// TestResult represents the result of executing one test unit
type TestResult struct {
	TestPath string        `json:"test_path"`
	Success  bool          `json:"success"`
	ExitCode int           `json:"exit_code"`
	Output   string        `json:"output,omitempty"`
	Error    error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// FallbackReport is the diagnostic output of a linear fallback run
type FallbackReport struct {
	Suite        string       `json:"suite"`
	TotalUnits   int          `json:"total_units"`
	Results      []TestResult `json:"results"`
	FirstFailure *TestFailure `json:"first_failure,omitempty"`
	Timestamp    string       `json:"timestamp"`
}

// Executed returns how many units ran before the fallback stopped
func (r *FallbackReport) Executed() int {
	return len(r.Results)
}
