package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestSuffix  string
	FuncPrefix  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Output     string
	NameFilter string
	FuncPrefix string
	Canonical  bool
	Functions  bool
}

// New creates a new Config with defaults, overlaid with any CQLEX_* values
// from the environment or a .env file in the working directory.
func New() *Config {
	cfg := &Config{
		ProjectPath:    ".",
		TestSuffix:     DefaultTestSuffix,
		FuncPrefix:     DefaultFuncPrefix,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)

	cfg.applyEnv()
	return cfg
}

// applyEnv loads .env if present (missing file is fine) and applies
// recognized variables over the defaults.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputJSONFile = v
	}
	if v := os.Getenv(EnvTestSuffix); v != "" {
		c.TestSuffix = v
	}
	if v := os.Getenv(EnvFuncPrefix); v != "" {
		c.FuncPrefix = v
	}
}

// GetFuncPrefix returns the test-function prefix, using the flag if provided
func (c *Config) GetFuncPrefix() string {
	if c.Flags.FuncPrefix != "" {
		return c.Flags.FuncPrefix
	}
	return c.FuncPrefix
}

// GetOutputPath returns the full path to the output JSON file. Resolves to
// an absolute path so extract and view always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
