package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"ptsplit/internal/domain"
)

// Load builds the configuration from defaults, the config file, the project's
// .env file, PTSPLIT_ environment variables and explicitly set flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	defaults := New()

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"project_path":     defaults.ProjectPath,
		"template":         defaults.TemplateFile,
		"target":           defaults.TargetFile,
		"groups":           defaults.Groups,
		"source_extension": defaults.SourceExtension,
		"test_file_suffix": defaults.TestFileSuffix,
		"phpunit_binary":   defaults.PHPUnitBinary,
		"phpunit_args":     []string{},
		"output_json_file": defaults.OutputJSONFile,
		"output_json_dir":  defaults.OutputJSONDir,
		"paths_to_ignore":  defaults.PathsToIgnore,
		"files_to_exclude": defaults.FilesToExclude,
		"verbose":          false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	projectPath := DefaultProjectPath
	if flags != nil && flags.Changed("project-path") {
		projectPath, _ = flags.GetString("project-path")
	}

	if cfgFile == "" {
		candidate := filepath.Join(projectPath, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			cfgFile = candidate
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// .env is optional; variables already set in the environment win
	_ = godotenv.Load(filepath.Join(projectPath, ".env"))

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := New()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Groups < 2 {
		return nil, domain.NewSuiteGenerationError(fmt.Sprintf("groups must be at least 2, got %d", cfg.Groups), nil)
	}
	return cfg, nil
}
