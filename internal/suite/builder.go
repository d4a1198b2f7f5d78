// Package suite partitions resolved test files into balanced groups.
package suite

import (
	"fmt"

	"ptsplit/internal/domain"
)

// Builder distributes test files across a fixed number of groups
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assigns every test to the group with the lowest weight so far, ties going
// to the lowest index. Each file weighs 1, so group sizes differ by at most one,
// and identical input order always produces identical groups.
func (b *Builder) Build(tests []domain.ResolvedTest, groups int) ([]domain.Group, error) {
	if groups < 1 {
		return nil, domain.NewSuiteGenerationError(fmt.Sprintf("cannot split tests into %d groups", groups), nil)
	}

	distribution := make([]domain.Group, groups)
	weights := make([]int, groups)
	for i := range distribution {
		distribution[i] = domain.NewGroup(i)
	}

	for _, test := range tests {
		target := 0
		for i := 1; i < groups; i++ {
			if weights[i] < weights[target] {
				target = i
			}
		}
		distribution[target].Files = append(distribution[target].Files, test.File)
		weights[target]++
	}

	return distribution, nil
}
