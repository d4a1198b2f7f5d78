package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
)

const twoCases = `<?php
class FooTest {
    public function testOne() {}
    public function testTwo() {}
}
`

func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer, *config.Config) {
	t.Helper()
	color.NoColor = true

	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	var buf bytes.Buffer
	f := NewFormatter(cfg, discovery.NewParser())
	f.SetOutput(&buf)
	return f, &buf, cfg
}

func writeTestFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatter_PrintPlan(t *testing.T) {
	f, buf, cfg := newTestFormatter(t)
	root := cfg.ProjectRoot()

	owner := domain.NewTestDescriptor(`A\FooTest`)
	plan := &domain.SplitPlan{
		Groups: []domain.Group{
			{Index: 0, Name: "split_group_0", Files: []string{filepath.Join(root, "tests/A/FooTest.php")}},
			{Index: 1, Name: "split_group_1", Files: []string{}},
		},
		SpecialCase: domain.Group{Index: 2, Name: "split_group_2", Files: []string{"tests/phpunit/suites/ExtensionsParserTestTopLevelSuite.php"}},
		Skipped:     []*domain.TestDescriptor{domain.NewTestDescriptor(`\ParserIntegrationTest`)},
		Duplicates: []domain.Duplicate{{
			Descriptor: domain.NewTestDescriptor(`A\FooTest`),
			File:       filepath.Join(root, "tests/A/FooTest.php"),
			Owner:      owner,
		}},
		Target: filepath.Join(root, "phpunit.xml"),
	}

	require.NoError(t, f.PrintPlan(plan))
	out := buf.String()

	assert.Contains(t, out, "split_group_0")
	assert.Contains(t, out, "split_group_2")
	assert.Contains(t, out, "tests/A/FooTest.php")
	assert.Contains(t, out, "ExtensionsParserTestTopLevelSuite.php")
	assert.Contains(t, out, `skipped \ParserIntegrationTest`)
	assert.Contains(t, out, `A\FooTest shares tests/A/FooTest.php with A\FooTest`)
	assert.Contains(t, out, "Wrote 2 test file(s) in 3 group(s) to phpunit.xml")
}

func TestFormatter_PrintGroupsWithTestCases(t *testing.T) {
	f, buf, cfg := newTestFormatter(t)
	writeTestFile(t, cfg.ProjectRoot(), "tests/FooTest.php", twoCases)
	writeTestFile(t, cfg.ProjectRoot(), "tests/BarTest.php", twoCases)
	cfg.Flags.TestCases = true

	groups := []domain.Group{{Index: 0, Name: "split_group_0", Files: []string{"tests/FooTest.php", "tests/BarTest.php"}}}
	require.NoError(t, f.PrintGroups(groups))
	assert.Contains(t, buf.String(), "TEST CASES")

	total, err := f.CountTestCases(groups[0].Files)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	total, err = f.CountTestCases([]string{"tests/MissingTest.php", "tests/FooTest.php"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestFormatter_PrintGroupFiles(t *testing.T) {
	f, buf, _ := newTestFormatter(t)

	f.PrintGroupFiles([]domain.Group{{Name: "split_group_0", Files: []string{"a/ATest.php", "b/BTest.php"}}})
	assert.Equal(t, "split_group_0 (2)\n├── a/ATest.php\n└── b/BTest.php\n", buf.String())
}

func TestFormatter_PrintReport(t *testing.T) {
	t.Run("first failure", func(t *testing.T) {
		f, buf, _ := newTestFormatter(t)
		f.PrintReport(&domain.FallbackReport{
			Suite:        "default",
			TotalUnits:   10,
			Results:      make([]domain.TestResult, 3),
			FirstFailure: &domain.TestFailure{FilePath: "tests/BrokenTest.php", ExitCode: 255, Message: "PHP Fatal error: Class not found"},
		})
		out := buf.String()
		assert.Contains(t, out, "3/10 units executed")
		assert.Contains(t, out, "First failing unit: tests/BrokenTest.php (exit code 255)")
		assert.Contains(t, out, "PHP Fatal error: Class not found")
		assert.Contains(t, out, "storage/split-diagnosis.json")
	})

	t.Run("no failure", func(t *testing.T) {
		f, buf, _ := newTestFormatter(t)
		f.PrintReport(&domain.FallbackReport{Suite: "default", TotalUnits: 2, Results: make([]domain.TestResult, 2)})
		assert.Contains(t, buf.String(), "Every unit passes on its own")
	})
}

func TestFormatter_PrintError(t *testing.T) {
	desc := domain.NewTestDescriptor(`C\FooTest`)

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "ambiguous namespace lists candidates",
			err: &domain.AmbiguousNamespaceError{Descriptor: desc, Candidates: []domain.CandidateNamespace{
				{Path: "/elsewhere/a/FooTest.php", Namespace: []string{"A"}},
				{Path: "/elsewhere/b/FooTest.php", Namespace: []string{}},
			}},
			want: []string{"/elsewhere/a/FooTest.php", "<global>", `Expected namespace C for class FooTest`},
		},
		{
			name: "unlocated",
			err:  &domain.UnlocatedTestError{Descriptor: desc, BaseName: "FooTest.php"},
			want: []string{"No file named FooTest.php"},
		},
		{
			name: "collector",
			err:  errors.Join(&domain.CollectorError{Class: "PHPUnit\\Framework\\ErrorTestCase"}, errors.New("fallback failed")),
			want: []string{"ptsplit fallback <suite>", "fallback failed"},
		},
		{
			name: "tests list missing",
			err:  &domain.TestListMissingError{Path: "tests-list-default.xml"},
			want: []string{"--list-tests-xml"},
		},
		{
			name: "generic",
			err:  errors.New("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf, _ := newTestFormatter(t)
			f.PrintError(tt.err)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
