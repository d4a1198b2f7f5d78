package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ptsplit/internal/config"
)

func TestFlags_ToConfigFlags(t *testing.T) {
	f := &Flags{
		ConfigFile:   "ptsplit.yaml",
		Groups:       4,
		SkipPrepared: true,
		NameFilter:   "*Parser*",
		Plain:        true,
		TestCases:    true,
		Report:       true,
	}

	assert.Equal(t, config.Flags{
		SkipPrepared: true,
		NameFilter:   "*Parser*",
		Plain:        true,
		TestCases:    true,
		Report:       true,
	}, f.ToConfigFlags())
}
