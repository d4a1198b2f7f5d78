package domain

import "strings"

// TestDescriptor is a declared test class awaiting file resolution
type TestDescriptor struct {
	ClassName          string   // Simple class name, e.g. "FooTest"
	FullyQualifiedName string   // Namespace and class joined with "\", e.g. "A\B\FooTest"
	Namespace          []string // Namespace segments, empty for the global namespace
	File               string   // Backing source file, set once during resolution
}

// NewTestDescriptor splits a fully qualified class name into its namespace and class parts.
// A leading backslash is ignored, so "\Foo" and "Foo" describe the same class.
func NewTestDescriptor(name string) *TestDescriptor {
	parts := strings.Split(strings.TrimLeft(strings.TrimSpace(name), "\\"), "\\")
	className := parts[len(parts)-1]
	namespace := make([]string, 0, len(parts)-1)
	namespace = append(namespace, parts[:len(parts)-1]...)

	return &TestDescriptor{
		ClassName:          className,
		FullyQualifiedName: strings.Join(namespace, "\\") + "\\" + className,
		Namespace:          namespace,
	}
}

// SetFile records the resolved file. Only the first call has an effect.
func (d *TestDescriptor) SetFile(path string) {
	if d.File == "" {
		d.File = path
	}
}

// Resolved reports whether a backing file has been attributed to the descriptor
func (d *TestDescriptor) Resolved() bool {
	return d.File != ""
}

// NamespaceString returns the namespace in PHP notation
func (d *TestDescriptor) NamespaceString() string {
	return strings.Join(d.Namespace, "\\")
}

// ResolvedTest pairs a distinct source file with the descriptor it was attributed to
type ResolvedTest struct {
	File       string
	Descriptor *TestDescriptor
}

// Duplicate records a descriptor whose file was already attributed to an earlier descriptor
type Duplicate struct {
	Descriptor *TestDescriptor
	File       string
	Owner      *TestDescriptor
}
