package cli

import "ptsplit/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile   string
	ProjectPath  string
	Verbose      bool
	Groups       int
	Template     string
	Target       string
	SkipPrepared bool
	NameFilter   string
	Plain        bool
	TestCases    bool
	Report       bool
}

// ToConfigFlags converts CLI flags to config flags. Flags that are also
// configuration keys reach the config through the loader instead.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SkipPrepared: f.SkipPrepared,
		NameFilter:   f.NameFilter,
		Plain:        f.Plain,
		TestCases:    f.TestCases,
		Report:       f.Report,
	}
}
