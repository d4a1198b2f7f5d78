package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"ptsplit/internal/config"
	"ptsplit/internal/domain"
)

// Runner executes PHPUnit for one test file against the base configuration
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes PHPUnit for a single test file
func (r *Runner) Run(ctx context.Context, unit string) domain.TestResult {
	args := make([]string, 0, len(r.config.PHPUnitArgs)+3)
	args = append(args, r.config.PHPUnitArgs...)
	args = append(args, "--configuration", r.config.GetTemplatePath(), unit)

	cmd := exec.CommandContext(ctx, r.config.GetPHPUnitPath(), args...)
	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectRoot()

	start := time.Now()
	output, err := cmd.CombinedOutput()

	exitCode := 0
	if err != nil {
		exitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return domain.TestResult{
		TestPath: unit,
		Success:  err == nil,
		ExitCode: exitCode,
		Output:   string(output),
		Error:    err,
		Duration: time.Since(start),
	}
}
