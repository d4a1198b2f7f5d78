package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"ptsplit/internal/domain"
)

func TestFallbackReporter(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	r := NewFallbackReporter()
	r.SetOutput(&out, io.Discard)

	r.Start("default", 3)
	r.UnitFinished(0, domain.TestResult{TestPath: "tests/ATest.php", Success: true}, 2, 0)
	r.UnitFinished(1, domain.TestResult{TestPath: "tests/BTest.php", ExitCode: 255}, 0, 1)
	r.Finish(&domain.FallbackReport{
		Suite:        "default",
		TotalUnits:   3,
		Results:      make([]domain.TestResult, 2),
		FirstFailure: &domain.TestFailure{FilePath: "tests/BTest.php"},
	})

	got := out.String()
	assert.Contains(t, got, "Running suite default linearly (3 units)")
	assert.NotContains(t, got, "tests/ATest.php")
	assert.Contains(t, got, "✗ 2. tests/BTest.php (exit code 255, 1 failed)")
	assert.Contains(t, got, "Stopped after 2/3 units")
	assert.Equal(t, 1, r.passed)
	assert.Equal(t, 1, r.failed)
}

func TestFallbackReporter_EmptySuite(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	r := NewFallbackReporter()
	r.SetOutput(&out, io.Discard)

	r.Start("extensions", 0)
	r.Finish(&domain.FallbackReport{Suite: "extensions"})
	assert.Contains(t, out.String(), "✓ 0/0 units passed individually")
}
