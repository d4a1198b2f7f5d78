package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestDescriptor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		className string
		fqn       string
		namespace []string
	}{
		{
			name:      "namespaced class",
			input:     "MediaWiki\\Tests\\Api\\ApiMainTest",
			className: "ApiMainTest",
			fqn:       "MediaWiki\\Tests\\Api\\ApiMainTest",
			namespace: []string{"MediaWiki", "Tests", "Api"},
		},
		{
			name:      "global namespace",
			input:     "ParserIntegrationTest",
			className: "ParserIntegrationTest",
			fqn:       "\\ParserIntegrationTest",
			namespace: []string{},
		},
		{
			name:      "leading backslash",
			input:     "\\A\\FooTest",
			className: "FooTest",
			fqn:       "A\\FooTest",
			namespace: []string{"A"},
		},
		{
			name:      "surrounding whitespace",
			input:     "  A\\BarTest \t",
			className: "BarTest",
			fqn:       "A\\BarTest",
			namespace: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTestDescriptor(tt.input)
			assert.Equal(t, tt.className, d.ClassName)
			assert.Equal(t, tt.fqn, d.FullyQualifiedName)
			assert.Equal(t, tt.namespace, d.Namespace)
			assert.False(t, d.Resolved())
		})
	}
}

func TestTestDescriptor_SetFileOnce(t *testing.T) {
	d := NewTestDescriptor("A\\FooTest")
	d.SetFile("/src/a/FooTest.php")
	d.SetFile("/src/b/FooTest.php")

	assert.True(t, d.Resolved())
	assert.Equal(t, "/src/a/FooTest.php", d.File)
}

func TestGroupName(t *testing.T) {
	assert.Equal(t, "split_group_0", GroupName(0))
	assert.Equal(t, "split_group_7", NewGroup(7).Name)
}
