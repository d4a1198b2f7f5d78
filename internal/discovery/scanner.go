package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for test files in a directory
type Scanner struct {
	skipDirs  map[string]bool
	skipFiles map[string]bool
	suffix    string
}

// NewScanner creates a new Scanner that collects files ending in suffix
// and skips the given directory names
func NewScanner(skipDirs []string, suffix string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, suffix: suffix}
}

// WithSuffix returns a copy of the scanner matching a different file suffix
func (s *Scanner) WithSuffix(suffix string) *Scanner {
	return &Scanner{skipDirs: s.skipDirs, skipFiles: s.skipFiles, suffix: suffix}
}

// WithExcludedFiles returns a copy of the scanner that also leaves out files
// with the given base names
func (s *Scanner) WithExcludedFiles(names []string) *Scanner {
	skipFiles := make(map[string]bool, len(s.skipFiles)+len(names))
	for name := range s.skipFiles {
		skipFiles[name] = true
	}
	for _, name := range names {
		skipFiles[name] = true
	}
	return &Scanner{skipDirs: s.skipDirs, skipFiles: skipFiles, suffix: s.suffix}
}

// Scan finds all test files under root, as absolute paths in lexical walk order
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	root, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("resolve test path %s: %w", root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if s.skipFiles[d.Name()] {
			return nil
		}
		if strings.HasSuffix(d.Name(), s.suffix) {
			testfiles = append(testfiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return testfiles, nil
}
