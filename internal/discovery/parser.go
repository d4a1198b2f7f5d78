package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var (
	namespacePattern = regexp.MustCompile(`(?m)^namespace\s+([^\s;]+)`)

	// Methods starting with "test", with any visibility/static/final modifiers
	testMethodPattern = regexp.MustCompile(`(?m)^\s*(?:(?:public|protected|private|static|final)\s+)*function\s+(test\w*)\s*\(`)

	// Methods marked with a @test docblock annotation or the #[Test] attribute
	annotatedPattern = regexp.MustCompile(`(?m)(?:@test\b[\s\S]*?\*/|#\[Test\])\s*(?:(?:public|protected|private|static|final)\s+)*function\s+(\w+)\s*\(`)
)

// Parser reads PHP source files. Namespace lookups are memoized per path.
type Parser struct {
	namespaces map[string][]string
}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{namespaces: make(map[string][]string)}
}

// Namespace returns the segments of the first namespace declaration in the file,
// or an empty slice for a file in the global namespace
func (p *Parser) Namespace(filePath string) ([]string, error) {
	if ns, ok := p.namespaces[filePath]; ok {
		return ns, nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	ns := []string{}
	if match := namespacePattern.FindSubmatch(content); match != nil {
		ns = strings.Split(strings.TrimLeft(string(match[1]), "\\"), "\\")
	}
	p.namespaces[filePath] = ns
	return ns, nil
}

// FindTestCases finds all test cases in a test file, sorted by name
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	found := make(map[string]bool)
	for _, match := range testMethodPattern.FindAllSubmatch(content, -1) {
		found[string(match[1])] = true
	}
	for _, match := range annotatedPattern.FindAllSubmatch(content, -1) {
		found[string(match[1])] = true
	}

	testCases := make([]string, 0, len(found))
	for name := range found {
		testCases = append(testCases, name)
	}
	sort.Strings(testCases)

	return testCases, nil
}
