package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TestListMissingError is returned when the declared tests list does not exist
type TestListMissingError struct {
	Path string
}

func (e *TestListMissingError) Error() string {
	return fmt.Sprintf("tests list %s does not exist", e.Path)
}

// UnlocatedTestError is returned when a declared class has no backing file
// and is not one of the expected-missing classes
type UnlocatedTestError struct {
	Descriptor *TestDescriptor
	BaseName   string // File name that was looked up, e.g. "FooTest.php"
}

func (e *UnlocatedTestError) Error() string {
	return fmt.Sprintf("could not find file for class %s (looked for %s)",
		e.Descriptor.FullyQualifiedName, e.BaseName)
}

// CandidateNamespace is a file sharing the descriptor's base name, with the namespace it declares
type CandidateNamespace struct {
	Path      string
	Namespace []string
}

// AmbiguousNamespaceError is returned when several files share a base name
// and none of them declares the descriptor's namespace
type AmbiguousNamespaceError struct {
	Descriptor *TestDescriptor
	Candidates []CandidateNamespace
}

func (e *AmbiguousNamespaceError) Error() string {
	found := make([]string, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		ns := strings.Join(c.Namespace, "\\")
		if ns == "" {
			ns = "<global>"
		}
		found = append(found, fmt.Sprintf("%s (%s)", c.Path, ns))
	}
	want := e.Descriptor.NamespaceString()
	if want == "" {
		want = "<global>"
	}
	return fmt.Sprintf("no file for class %s declares namespace %s; candidates: %s",
		e.Descriptor.FullyQualifiedName, want, strings.Join(found, ", "))
}

// CollectorError signals that the tests list contains PHPUnit's ErrorTestCase,
// meaning `phpunit --list-tests-xml` itself failed to collect the suite
type CollectorError struct {
	Class string
}

func (e *CollectorError) Error() string {
	return fmt.Sprintf("%s found in tests list: the PHPUnit test collector reported an error", e.Class)
}

// SuiteGenerationError wraps any failure while building or persisting phpunit.xml
type SuiteGenerationError struct {
	Message string
	Err     error
}

func (e *SuiteGenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("suite generation failed: %s", e.Message)
	}
	return fmt.Sprintf("suite generation failed: %s: %v", e.Message, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *SuiteGenerationError) Unwrap() error {
	return e.Err
}

// NewSuiteGenerationError creates a new SuiteGenerationError
func NewSuiteGenerationError(message string, err error) *SuiteGenerationError {
	return &SuiteGenerationError{Message: message, Err: err}
}

// IsTestListMissing checks if the error is or wraps a TestListMissingError
func IsTestListMissing(err error) bool {
	var target *TestListMissingError
	return err != nil && errors.As(err, &target)
}

// IsUnlocatedTest checks if the error is or wraps an UnlocatedTestError
func IsUnlocatedTest(err error) bool {
	var target *UnlocatedTestError
	return err != nil && errors.As(err, &target)
}

// IsAmbiguousNamespace checks if the error is or wraps an AmbiguousNamespaceError
func IsAmbiguousNamespace(err error) bool {
	var target *AmbiguousNamespaceError
	return err != nil && errors.As(err, &target)
}

// IsCollectorError checks if the error is or wraps a CollectorError
func IsCollectorError(err error) bool {
	var target *CollectorError
	return err != nil && errors.As(err, &target)
}

// IsSuiteGeneration checks if the error is or wraps a SuiteGenerationError
func IsSuiteGeneration(err error) bool {
	var target *SuiteGenerationError
	return err != nil && errors.As(err, &target)
}
