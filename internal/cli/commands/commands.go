package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ptsplit/internal/cli"
	"ptsplit/internal/config"
	"ptsplit/internal/discovery"
	"ptsplit/internal/execution"
	"ptsplit/internal/parser"
	"ptsplit/internal/phpunitxml"
	"ptsplit/internal/split"
	"ptsplit/internal/storage"
	"ptsplit/internal/suite"
	"ptsplit/internal/testlist"
	"ptsplit/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	config    *config.Config
	flags     *cli.Flags
	logger    *zap.Logger
	formatter *ui.Formatter

	Split    *SplitCommand
	Status   *StatusCommand
	Show     *ShowCommand
	Fallback *FallbackCommand
}

// NewCommands creates the command set. Dependencies are wired once the
// configuration has been loaded, right before a command runs.
func NewCommands(cfg *config.Config, flags *cli.Flags) *Commands {
	return &Commands{
		config:    cfg,
		flags:     flags,
		logger:    zap.NewNop(),
		formatter: ui.NewFormatter(cfg, discovery.NewParser()),
	}
}

// PrintError prints a command error with its diagnostic detail
func (c *Commands) PrintError(err error) {
	c.formatter.PrintError(err)
}

// Setup loads the configuration, builds the logger and wires the commands
func (c *Commands) Setup(cmd *cobra.Command) error {
	loaded, err := config.Load(c.flags.ConfigFile, cmd.Flags())
	if err != nil {
		return err
	}
	*c.config = *loaded
	c.config.Flags = c.flags.ToConfigFlags()

	logConfig := zap.NewProductionConfig()
	if c.config.Verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	c.wire()
	return nil
}

// Sync flushes the logger
func (c *Commands) Sync() {
	_ = c.logger.Sync()
}

func (c *Commands) wire() {
	cfg := c.config
	sourceScanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.SourceExtension)
	testScanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.TestFileSuffix)
	namespaceParser := discovery.NewParser()
	runner := execution.NewRunner(cfg)
	phpunitParser := parser.NewPHPUnitParser()
	fallback := execution.NewLinearFallback(cfg, testScanner, discovery.NewFilter(), runner, phpunitParser, c.logger)
	fallback.SetReporter(ui.NewFallbackReporter())
	jsonStorage := storage.NewJSONStorage(cfg)
	composer := phpunitxml.NewComposer(cfg.GetTemplatePath(), cfg.ProjectRoot(), c.logger)
	manager := split.NewManager(cfg, testlist.NewLoader(), sourceScanner, namespaceParser, suite.NewBuilder(), composer, fallback, jsonStorage, c.logger)
	viewer := ui.NewGroupViewer(cfg, namespaceParser)

	c.Split = NewSplitCommand(cfg, manager, c.formatter)
	c.Status = NewStatusCommand(cfg, c.formatter)
	c.Show = NewShowCommand(cfg, c.formatter, viewer, jsonStorage)
	c.Fallback = NewFallbackCommand(cfg, fallback, jsonStorage, c.formatter)
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command) {
	flags := c.flags

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Config file (default is ptsplit.yaml in the project path)")
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project-path", "C", config.DefaultProjectPath, "Root of the PHP project")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.Setup(cmd)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		c.Sync()
	}

	// Split command
	splitCmd := &cobra.Command{
		Use:   "split <default|extensions|tests-list>",
		Short: "Split a PHPUnit tests list into balanced suites",
		Long: `Resolve every test class of a tests list to its file, balance the files
into split_group_N suites and write them into phpunit.xml.

"default" and "extensions" read tests-list-default.xml and
tests-list-extensions.xml; when PHPUnit failed to collect the tests, that suite
is run file by file to find the one that breaks it. Any other argument is a
tests list path and never triggers the fallback.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Split.Execute(cmd, args)
		},
	}
	splitCmd.Flags().IntVarP(&flags.Groups, "groups", "g", config.DefaultGroups, "Number of groups to write, including the special case group")
	splitCmd.Flags().StringVar(&flags.Template, "template", config.DefaultTemplateFile, "Base phpunit configuration")
	splitCmd.Flags().StringVar(&flags.Target, "target", config.DefaultTargetFile, "Generated phpunit configuration")
	splitCmd.Flags().BoolVar(&flags.SkipPrepared, "skip-prepared", false, "Do nothing when the target already contains split groups")
	splitCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Limit fallback units by name pattern (supports wildcards, e.g., '*ParserTest.php')")
	rootCmd.AddCommand(splitCmd)

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether phpunit.xml contains split groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Status.Execute(cmd, args)
		},
	}
	statusCmd.Flags().StringVar(&flags.Target, "target", config.DefaultTargetFile, "Generated phpunit configuration")
	rootCmd.AddCommand(statusCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Browse the generated split groups",
		Long:  "Display the split groups of the generated phpunit.xml in an interactive viewer, or the report of the last linear fallback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Show.Execute(cmd, args)
		},
	}
	showCmd.Flags().StringVar(&flags.Target, "target", config.DefaultTargetFile, "Generated phpunit configuration")
	showCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print a table instead of opening the viewer")
	showCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "Count test cases per group")
	showCmd.Flags().BoolVar(&flags.Report, "report", false, "Print the last linear fallback report (storage/split-diagnosis.json)")
	rootCmd.AddCommand(showCmd)

	// Fallback command
	fallbackCmd := &cobra.Command{
		Use:   "fallback <suite>",
		Short: "Run a test suite one file at a time",
		Long:  "Run every file of a suite of the base configuration on its own and stop at the first one that fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Fallback.Execute(cmd, args)
		},
	}
	fallbackCmd.Flags().StringVar(&flags.Template, "template", config.DefaultTemplateFile, "Base phpunit configuration")
	fallbackCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter units by name pattern (supports wildcards, e.g., '*ParserTest.php')")
	rootCmd.AddCommand(fallbackCmd)
}
