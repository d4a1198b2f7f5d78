package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for file, content := range files {
		fullPath := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"tests/unit/UserTest.php":          "<?php",
		"tests/unit/PaymentTest.php":       "<?php",
		"tests/integration/OrderTest.php":  "<?php",
		"vendor/some/LibTest.php":          "<?php",
		"node_modules/some/file.js":        "",
		".git/hooks/HookTest.php":          "<?php",
		"not_a_test.php":                   "<?php",
		"tests/unit/fixtures/DataTest.txt": "",
	})

	scanner := NewScanner([]string{"vendor", "node_modules"}, "Test.php")

	t.Run("scans test files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		require.NoError(t, err)

		// Lexical walk order, absolute paths, skipped dirs left out
		assert.Equal(t, []string{
			filepath.Join(tmpDir, "tests/integration/OrderTest.php"),
			filepath.Join(tmpDir, "tests/unit/PaymentTest.php"),
			filepath.Join(tmpDir, "tests/unit/UserTest.php"),
		}, results)
	})

	t.Run("stable across runs", func(t *testing.T) {
		first, err := scanner.Scan(tmpDir)
		require.NoError(t, err)
		second, err := scanner.Scan(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("custom suffix", func(t *testing.T) {
		results, err := scanner.WithSuffix(".php").Scan(tmpDir)
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		assert.Error(t, err)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "not_a_test.php"))
		assert.Error(t, err)
	})
}

func TestBuildIndex(t *testing.T) {
	index := BuildIndex([]string{
		"/src/a/FooTest.php",
		"/src/a/BarTest.php",
		"/src/b/FooTest.php",
	})

	assert.Equal(t, []string{"/src/a/FooTest.php", "/src/b/FooTest.php"}, index.Candidates("FooTest.php"))
	assert.Equal(t, []string{"/src/a/BarTest.php"}, index.Candidates("BarTest.php"))
	assert.Empty(t, index.Candidates("BazTest.php"))
	assert.Equal(t, 3, index.Files())
}

func TestScanner_ScanIndex(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a/FooTest.php": "<?php",
		"b/FooTest.php": "<?php",
	})

	index, err := NewScanner(nil, "Test.php").ScanIndex(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a/FooTest.php"),
		filepath.Join(tmpDir, "b/FooTest.php"),
	}, index.Candidates("FooTest.php"))

	_, err = NewScanner(nil, "Test.php").ScanIndex(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}

func TestScanner_WithExcludedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"tests/phpunit/suites/ParserIntegrationTest.php": "<?php",
		"tests/phpunit/unit/FooTest.php":                 "<?php",
		"tests/phpunit/unit/BarTest.php":                 "<?php",
	})

	base := NewScanner(nil, ".php")
	scanner := base.WithExcludedFiles([]string{"ParserIntegrationTest.php"})

	results, err := scanner.Scan(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "tests/phpunit/unit/BarTest.php"),
		filepath.Join(tmpDir, "tests/phpunit/unit/FooTest.php"),
	}, results)

	t.Run("kept across suffix changes", func(t *testing.T) {
		results, err := scanner.WithSuffix("Test.php").Scan(tmpDir)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("original scanner unchanged", func(t *testing.T) {
		results, err := base.Scan(tmpDir)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}
