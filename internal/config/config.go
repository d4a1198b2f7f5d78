package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string `koanf:"project_path"`
	TemplateFile string `koanf:"template"`
	TargetFile   string `koanf:"target"`

	// Split settings
	Groups          int    `koanf:"groups"`
	SourceExtension string `koanf:"source_extension"`
	TestFileSuffix  string `koanf:"test_file_suffix"`

	// Fallback execution settings
	PHPUnitBinary string   `koanf:"phpunit_binary"`
	PHPUnitArgs   []string `koanf:"phpunit_args"`

	// Output settings
	OutputJSONFile string `koanf:"output_json_file"`
	OutputJSONDir  string `koanf:"output_json_dir"`

	// Paths to ignore when scanning
	PathsToIgnore []string `koanf:"paths_to_ignore"`

	// Files never indexed for resolution
	FilesToExclude []string `koanf:"files_to_exclude"`

	Verbose bool `koanf:"verbose"`

	// Command flags
	Flags Flags `koanf:"-"`
}

// Flags holds command-line flags that are not configuration keys
type Flags struct {
	SkipPrepared bool
	NameFilter   string
	Plain        bool
	TestCases    bool
	Report       bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:     DefaultProjectPath,
		TemplateFile:    DefaultTemplateFile,
		TargetFile:      DefaultTargetFile,
		Groups:          DefaultGroups,
		SourceExtension: DefaultSourceExtension,
		TestFileSuffix:  DefaultTestFileSuffix,
		PHPUnitBinary:   DefaultPHPUnitBinary,
		OutputJSONFile:  DefaultOutputJSONFile,
		OutputJSONDir:   DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.FilesToExclude = make([]string, len(DefaultFilesToExclude))
	copy(cfg.FilesToExclude, DefaultFilesToExclude)
	return cfg
}

// ProjectRoot returns the absolute project path
func (c *Config) ProjectRoot() string {
	if abs, err := filepath.Abs(c.ProjectPath); err == nil {
		return abs
	}
	return c.ProjectPath
}

// resolve joins a relative path onto the project root
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectRoot(), path)
}

// GetTemplatePath returns the full path to the base phpunit configuration
func (c *Config) GetTemplatePath() string {
	return c.resolve(c.TemplateFile)
}

// GetTargetPath returns the full path the generated phpunit configuration is written to
func (c *Config) GetTargetPath() string {
	return c.resolve(c.TargetFile)
}

// GetTestsListPath returns the full path to a tests list file
func (c *Config) GetTestsListPath(name string) string {
	return c.resolve(name)
}

// GetOutputPath returns the full path to the fallback diagnosis JSON file
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.ProjectRoot(), c.OutputJSONDir, c.OutputJSONFile)
}

// GetPHPUnitPath returns the path to PHPUnit binary
func (c *Config) GetPHPUnitPath() string {
	return c.resolve(c.PHPUnitBinary)
}
