package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cqlex/internal/cli"
	"cqlex/internal/cli/commands"
	"cqlex/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "cqlex",
		Short:   "CQL test-fixture extractor",
		Long:    `Extracts table-driven test cases from Go test files following the google/cql convention into a portable, language-neutral JSON fixture.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
