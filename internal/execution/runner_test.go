package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptsplit/internal/config"
)

// fakePHPUnit writes a shell script standing in for vendor/bin/phpunit.
// It echoes its arguments and exits 1 for units whose name contains "Failing".
func fakePHPUnit(t *testing.T, root string) {
	t.Helper()
	script := "#!/bin/sh\n" +
		"echo \"args: $*\"\n" +
		"case \"$3\" in *Failing*) echo 'FAILURES!'; echo 'Tests: 2, Assertions: 2, Failures: 1.'; exit 1;; esac\n" +
		"echo 'OK (2 tests, 2 assertions)'\n"
	path := filepath.Join(root, "vendor", "bin", "phpunit")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
}

func TestRunner_Run(t *testing.T) {
	root := t.TempDir()
	fakePHPUnit(t, root)

	cfg := config.New()
	cfg.ProjectPath = root

	runner := NewRunner(cfg)

	t.Run("passing unit", func(t *testing.T) {
		result := runner.Run(context.Background(), "tests/phpunit/unit/FooTest.php")
		require.NoError(t, result.Error)
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "tests/phpunit/unit/FooTest.php", result.TestPath)
		assert.Contains(t, result.Output, "--configuration "+filepath.Join(root, "phpunit.xml.dist")+" tests/phpunit/unit/FooTest.php")
	})

	t.Run("failing unit", func(t *testing.T) {
		result := runner.Run(context.Background(), "tests/phpunit/unit/FailingTest.php")
		assert.False(t, result.Success)
		assert.Equal(t, 1, result.ExitCode)
		assert.Contains(t, result.Output, "FAILURES!")
	})

	t.Run("missing binary", func(t *testing.T) {
		broken := config.New()
		broken.ProjectPath = root
		broken.PHPUnitBinary = "vendor/bin/missing"

		result := NewRunner(broken).Run(context.Background(), "tests/phpunit/unit/FooTest.php")
		assert.False(t, result.Success)
		assert.Equal(t, -1, result.ExitCode)
		assert.Error(t, result.Error)
	})

	t.Run("extra arguments come first", func(t *testing.T) {
		withArgs := config.New()
		withArgs.ProjectPath = root
		withArgs.PHPUnitArgs = []string{"--colors=never"}

		result := NewRunner(withArgs).Run(context.Background(), "tests/phpunit/unit/FooTest.php")
		assert.Contains(t, result.Output, "args: --colors=never --configuration")
	})
}
