// Package resolver maps declared test classes onto the source files that define them.
package resolver

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"ptsplit/internal/discovery"
	"ptsplit/internal/domain"
)

// CollectorSentinel is the class PHPUnit substitutes for a test it failed to load.
// Seeing it in the tests list means `phpunit --list-tests-xml` itself went wrong.
const CollectorSentinel = "PHPUnit\\Framework\\ErrorTestCase"

// ExpectedMissingClasses are declared classes with no file of their own.
// SkippedTestCase is generated by PHPUnit for skipped tests. ParserIntegrationTest
// generates a very large number of tests and is added back as the special case group.
var ExpectedMissingClasses = map[string]struct{}{
	"PHPUnit\\Framework\\SkippedTestCase":                                           {},
	"MediaWiki\\Extension\\Scribunto\\Tests\\Engines\\LuaCommon\\LuaEngineTestSkip": {},
	"\\ParserIntegrationTest":                                                       {},
}

// NamespaceReader returns the namespace segments declared by a source file
type NamespaceReader interface {
	Namespace(path string) ([]string, error)
}

// Resolution is the result of resolving a tests list
type Resolution struct {
	Tests      []domain.ResolvedTest    // One entry per distinct file, in declared order
	Skipped    []*domain.TestDescriptor // Expected-missing descriptors
	Duplicates []domain.Duplicate       // Descriptors whose file was already attributed
}

// Resolver resolves descriptors against a file index
type Resolver struct {
	index           discovery.FileIndex
	namespaces      NamespaceReader
	expectedMissing map[string]struct{}
	sentinel        string
	extension       string
	logger          *zap.Logger
}

// New creates a Resolver. expectedMissing and sentinel are usually
// ExpectedMissingClasses and CollectorSentinel.
func New(index discovery.FileIndex, namespaces NamespaceReader, expectedMissing map[string]struct{}, sentinel, extension string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		index:           index,
		namespaces:      namespaces,
		expectedMissing: expectedMissing,
		sentinel:        sentinel,
		extension:       extension,
		logger:          logger,
	}
}

// Resolve attributes a file to every descriptor, stopping at the first fatal condition
func (r *Resolver) Resolve(descriptors []*domain.TestDescriptor) (*Resolution, error) {
	res := &Resolution{}
	owners := make(map[string]*domain.TestDescriptor)

	for _, d := range descriptors {
		file, err := r.ResolveFile(d)
		if err != nil {
			return nil, err
		}
		if file == "" {
			res.Skipped = append(res.Skipped, d)
			continue
		}

		if owner, seen := owners[file]; seen {
			r.logger.Warn("file already attributed to another test class",
				zap.String("class", d.FullyQualifiedName),
				zap.String("file", file),
				zap.String("owner", owner.FullyQualifiedName))
			res.Duplicates = append(res.Duplicates, domain.Duplicate{Descriptor: d, File: file, Owner: owner})
			continue
		}

		d.SetFile(file)
		owners[file] = d
		res.Tests = append(res.Tests, domain.ResolvedTest{File: file, Descriptor: d})
	}

	return res, nil
}

// ResolveFile returns the file backing a single descriptor. An empty path
// without error means the class is expected to have no file.
func (r *Resolver) ResolveFile(d *domain.TestDescriptor) (string, error) {
	baseName := d.ClassName + r.extension
	candidates := r.index.Candidates(baseName)

	if len(candidates) == 0 {
		if _, ok := r.expectedMissing[d.FullyQualifiedName]; ok {
			return "", nil
		}
		if d.FullyQualifiedName == r.sentinel {
			return "", &domain.CollectorError{Class: d.FullyQualifiedName}
		}
		return "", &domain.UnlocatedTestError{Descriptor: d, BaseName: baseName}
	}

	// A lone candidate cannot plausibly belong to another class
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	found := make([]domain.CandidateNamespace, 0, len(candidates))
	for _, path := range candidates {
		ns, err := r.namespaces.Namespace(path)
		if err != nil {
			return "", fmt.Errorf("read namespace of %s: %w", path, err)
		}
		if slices.Equal(ns, d.Namespace) {
			return path, nil
		}
		found = append(found, domain.CandidateNamespace{Path: path, Namespace: ns})
	}

	return "", &domain.AmbiguousNamespaceError{Descriptor: d, Candidates: found}
}
