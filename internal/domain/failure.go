package domain

// TestFailure describes the unit that stopped a linear fallback run
type TestFailure struct {
	FilePath string `json:"file_path"`
	ExitCode int    `json:"exit_code"`
	Passed   int    `json:"passed"`
	Failed   int    `json:"failed"`
	Message  string `json:"message"`
}
