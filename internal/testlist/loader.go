// Package testlist reads the list of test classes PHPUnit expects to run.
//
// Two formats are accepted: the XML written by `phpunit --list-tests-xml`,
// where every <testCaseClass name="..."> is one class, and plain text with
// one fully qualified class name per line.
package testlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"

	"ptsplit/internal/domain"
)

// Loader parses a tests list into descriptors
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the tests list at path. Descriptors are returned in declared order;
// a class declared more than once is kept at its first position only.
func (l *Loader) Load(path string) ([]*domain.TestDescriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.TestListMissingError{Path: path}
		}
		return nil, fmt.Errorf("read tests list %s: %w", path, err)
	}

	var names []string
	if bytes.HasPrefix(bytes.TrimSpace(content), []byte("<")) {
		names, err = l.parseXML(content)
		if err != nil {
			return nil, fmt.Errorf("parse tests list %s: %w", path, err)
		}
	} else {
		names = l.parseLines(content)
	}

	seen := make(map[string]bool, len(names))
	descriptors := make([]*domain.TestDescriptor, 0, len(names))
	for _, name := range names {
		d := domain.NewTestDescriptor(name)
		if d.ClassName == "" || seen[d.FullyQualifiedName] {
			continue
		}
		seen[d.FullyQualifiedName] = true
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func (l *Loader) parseXML(content []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errors.New("document has no root element")
	}

	var names []string
	for _, class := range doc.FindElements("//testCaseClass") {
		if name := strings.TrimSpace(class.SelectAttrValue("name", "")); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func (l *Loader) parseLines(content []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}
