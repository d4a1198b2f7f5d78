package domain

import "fmt"

// GroupPrefix is the name prefix of generated test suites in phpunit.xml
const GroupPrefix = "split_group_"

// Group is one execution bucket of test files
type Group struct {
	Index int
	Name  string
	Files []string
}

// NewGroup creates an empty group with the conventional suite name for the index
func NewGroup(index int) Group {
	return Group{
		Index: index,
		Name:  GroupName(index),
		Files: make([]string, 0),
	}
}

// GroupName returns the suite name used for the group index
func GroupName(index int) string {
	return fmt.Sprintf("%s%d", GroupPrefix, index)
}

// SplitPlan is the outcome of a successful split run
type SplitPlan struct {
	Groups      []Group
	SpecialCase Group
	Skipped     []*TestDescriptor // Expected-missing descriptors left unresolved
	Duplicates  []Duplicate
	Target      string
}

// TotalFiles returns the number of files across the balanced groups
func (p *SplitPlan) TotalFiles() int {
	total := 0
	for _, g := range p.Groups {
		total += len(g.Files)
	}
	return total
}
