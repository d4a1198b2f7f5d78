// Package phpunitxml reads and writes the phpunit.xml run configuration.
package phpunitxml

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"

	"ptsplit/internal/domain"
)

// SpecialCaseFile is the parser test suite. It is excluded from scanning because
// it generates far more tests than any other class and always gets a group of its own.
const SpecialCaseFile = "tests/phpunit/suites/ExtensionsParserTestTopLevelSuite.php"

// Document is a phpunit configuration held in memory
type Document struct {
	doc         *etree.Document
	testsuites  *etree.Element
	projectRoot string
}

// Load reads a phpunit configuration. Member paths under projectRoot are
// written relative to it.
func Load(path, projectRoot string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, domain.NewSuiteGenerationError(fmt.Sprintf("read %s", path), err)
	}
	testsuites := doc.FindElement("//testsuites")
	if testsuites == nil {
		return nil, domain.NewSuiteGenerationError(fmt.Sprintf("%s has no <testsuites> element", path), nil)
	}
	return &Document{doc: doc, testsuites: testsuites, projectRoot: projectRoot}, nil
}

// AddSplitGroups replaces any previously generated suites with one suite per group
func (d *Document) AddSplitGroups(groups []domain.Group) {
	for _, suite := range d.testsuites.SelectElements("testsuite") {
		if strings.HasPrefix(suite.SelectAttrValue("name", ""), domain.GroupPrefix) {
			d.testsuites.RemoveChild(suite)
		}
	}
	for _, group := range groups {
		d.addSuite(group)
	}
}

// AddSpecialCaseTests appends the last group, holding only the special case file,
// and returns it
func (d *Document) AddSpecialCaseTests(groupCount int) domain.Group {
	group := domain.NewGroup(groupCount - 1)
	group.Files = append(group.Files, SpecialCaseFile)
	d.addSuite(group)
	return group
}

func (d *Document) addSuite(group domain.Group) {
	suite := d.testsuites.CreateElement("testsuite")
	suite.CreateAttr("name", group.Name)
	for _, file := range group.Files {
		suite.CreateElement("file").SetText(d.relative(file))
	}
}

func (d *Document) relative(path string) string {
	if d.projectRoot == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(d.projectRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Bytes serializes the document with tab indentation
func (d *Document) Bytes() ([]byte, error) {
	d.doc.IndentTabs()
	return d.doc.WriteToBytes()
}

// SaveToDisk atomically replaces target with the document. On failure the
// previous target, if any, is left as it was.
func (d *Document) SaveToDisk(target string) error {
	data, err := d.Bytes()
	if err != nil {
		return domain.NewSuiteGenerationError("serialize phpunit configuration", err)
	}

	// The temporary file lives next to target so the rename stays on one filesystem
	if err := renameio.WriteFile(target, data, 0644, renameio.WithTempDir(filepath.Dir(target))); err != nil {
		return domain.NewSuiteGenerationError(fmt.Sprintf("replace %s", target), err)
	}
	return nil
}

// SplitGroups returns the generated suites in document order
func (d *Document) SplitGroups() []domain.Group {
	var groups []domain.Group
	for _, suite := range d.testsuites.SelectElements("testsuite") {
		name := suite.SelectAttrValue("name", "")
		index, err := strconv.Atoi(strings.TrimPrefix(name, domain.GroupPrefix))
		if !strings.HasPrefix(name, domain.GroupPrefix) || err != nil {
			continue
		}
		group := domain.Group{Index: index, Name: name, Files: make([]string, 0)}
		for _, file := range suite.SelectElements("file") {
			group.Files = append(group.Files, strings.TrimSpace(file.Text()))
		}
		groups = append(groups, group)
	}
	return groups
}

// DirectoryEntry is a <directory> member of a test suite
type DirectoryEntry struct {
	Path   string
	Suffix string
}

// SuiteEntries are the members of a named test suite
type SuiteEntries struct {
	Directories []DirectoryEntry
	Files       []string
	Excludes    []string
}

// SuiteEntries returns the members of the suite with the given name
func (d *Document) SuiteEntries(name string) (*SuiteEntries, error) {
	for _, suite := range d.testsuites.SelectElements("testsuite") {
		if suite.SelectAttrValue("name", "") != name {
			continue
		}
		entries := &SuiteEntries{}
		for _, child := range suite.ChildElements() {
			text := strings.TrimSpace(child.Text())
			if text == "" {
				continue
			}
			switch child.Tag {
			case "directory":
				entries.Directories = append(entries.Directories, DirectoryEntry{
					Path:   text,
					Suffix: child.SelectAttrValue("suffix", ""),
				})
			case "file":
				entries.Files = append(entries.Files, text)
			case "exclude":
				entries.Excludes = append(entries.Excludes, text)
			}
		}
		return entries, nil
	}
	return nil, fmt.Errorf("test suite %q not found in phpunit configuration", name)
}

// IsPrepared reports whether the configuration at path already carries split groups
func IsPrepared(path string) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return false
	}
	return doc.FindElement(fmt.Sprintf("//testsuite[@name='%s']", domain.GroupName(0))) != nil
}
