package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Namespace(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a/FooTest.php":      "<?php\n\nnamespace MediaWiki\\Tests\\Api;\n\nclass FooTest {}\n",
		"b/FooTest.php":      "<?php\n/* namespace Not\\This; */\nnamespace   Other ;\nnamespace Second;\n",
		"c/GlobalTest.php":   "<?php\n\nclass GlobalTest {}\n",
		"d/IndentedTest.php": "<?php\n  namespace Indented;\n",
	})

	parser := NewParser()

	tests := []struct {
		name     string
		file     string
		expected []string
	}{
		{"namespaced file", "a/FooTest.php", []string{"MediaWiki", "Tests", "Api"}},
		{"first declaration at line start wins", "b/FooTest.php", []string{"Other"}},
		{"global namespace", "c/GlobalTest.php", []string{}},
		{"indented declaration is ignored", "d/IndentedTest.php", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, err := parser.Namespace(filepath.Join(tmpDir, tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ns)
		})
	}

	t.Run("memoized per path", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a/FooTest.php")
		_, err := parser.Namespace(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		ns, err := parser.Namespace(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"MediaWiki", "Tests", "Api"}, ns)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.Namespace("/non/existent/file.php")
		assert.Error(t, err)
	})
}

func TestParser_FindTestCases(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "UserTest.php")
	phpContent := `<?php

class UserTest extends TestCase
{
    public function testCreateUser()
    {
    }

    protected static function testUpdateUser()
    {
    }

    /**
     * @test
     */
    public function itDeletesUsers()
    {
    }

    #[Test]
    public function itRestoresUsers()
    {
    }

    public function helperMethod()
    {
    }
}
`
	require.NoError(t, os.WriteFile(testFile, []byte(phpContent), 0644))

	parser := NewParser()

	t.Run("finds test methods", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		require.NoError(t, err)
		assert.Equal(t, []string{"itDeletesUsers", "itRestoresUsers", "testCreateUser", "testUpdateUser"}, testCases)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/file.php")
		assert.Error(t, err)
	})
}
