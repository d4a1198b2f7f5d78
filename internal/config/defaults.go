package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTemplateFile is the phpunit configuration the split groups are added to
	DefaultTemplateFile = "phpunit.xml.dist"
	// DefaultTargetFile is the generated phpunit configuration
	DefaultTargetFile = "phpunit.xml"
	// DefaultGroups is the total number of groups, including the special case group.
	// Eight groups saturate a typical developer machine and come out close in size
	// to the parser tests, which have to run in a group of their own.
	DefaultGroups = 8
	// DefaultSourceExtension is appended to a class name to find its file
	DefaultSourceExtension = ".php"
	// DefaultTestFileSuffix selects the files indexed when scanning
	DefaultTestFileSuffix = "Test.php"
	// DefaultPHPUnitBinary is the PHPUnit entry point, relative to the project path
	DefaultPHPUnitBinary = "vendor/bin/phpunit"
	// DefaultOutputJSONFile is the file the linear fallback report is written to
	DefaultOutputJSONFile = "split-diagnosis.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigFile is looked up in the project path when no --config is given
	DefaultConfigFile = "ptsplit.yaml"
	// EnvPrefix is the prefix of environment variables overriding config keys
	EnvPrefix = "PTSPLIT_"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"cache",
	"images",
	"logs",
}

// DefaultFilesToExclude are source files left out of the file index. The parser
// integration test runs only through the special case group.
var DefaultFilesToExclude = []string{
	"ParserIntegrationTest.php",
	"ExtensionsParserTestTopLevelSuite.php",
}
