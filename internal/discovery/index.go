package discovery

import "path/filepath"

// FileIndex maps a file's base name to every path sharing it, in scan order
type FileIndex map[string][]string

// BuildIndex groups paths by base name, keeping the order in which they were given
func BuildIndex(paths []string) FileIndex {
	index := make(FileIndex)
	for _, path := range paths {
		name := filepath.Base(path)
		index[name] = append(index[name], path)
	}
	return index
}

// Candidates returns the paths with the given base name
func (ix FileIndex) Candidates(name string) []string {
	return ix[name]
}

// Files returns the number of indexed paths
func (ix FileIndex) Files() int {
	total := 0
	for _, paths := range ix {
		total += len(paths)
	}
	return total
}

// ScanIndex scans root and builds the index in one step
func (s *Scanner) ScanIndex(root string) (FileIndex, error) {
	paths, err := s.Scan(root)
	if err != nil {
		return nil, err
	}
	return BuildIndex(paths), nil
}
