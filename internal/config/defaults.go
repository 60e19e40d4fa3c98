package config

const (
	// DefaultTestSuffix is the file suffix the scanner looks for
	DefaultTestSuffix = "_test.go"
	// DefaultFuncPrefix is the test-function name prefix
	DefaultFuncPrefix = "Test"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "extracted-tests.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
	"third_party",
}

// Env variable names recognized from the environment or a .env file.
const (
	EnvOutputDir  = "CQLEX_OUTPUT_DIR"
	EnvOutputFile = "CQLEX_OUTPUT_FILE"
	EnvTestSuffix = "CQLEX_TEST_SUFFIX"
	EnvFuncPrefix = "CQLEX_FUNC_PREFIX"
)
