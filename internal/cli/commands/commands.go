package commands

import (
	"github.com/spf13/cobra"

	"cqlex/internal/cli"
	"cqlex/internal/config"
	"cqlex/internal/discovery"
	"cqlex/internal/storage"
	"cqlex/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Extract *ExtractCommand
	List    *ListCommand
	View    *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.TestSuffix, cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	caseViewer := ui.NewCaseViewer(cfg)

	return &Commands{
		Extract: NewExtractCommand(cfg, scanner, filter, jsonStorage, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		View:    NewViewCommand(cfg, jsonStorage, caseViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Extract command
	extractCmd := &cobra.Command{
		Use:   "extract <path>",
		Short: "Extract test cases into a JSON fixture",
		Long:  "Extract table-driven test cases from a Go test file, or from every test file under a directory, into a portable JSON fixture",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Extract.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	extractCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output JSON file (single-file mode; defaults to stdout)")
	extractCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*operator_test.go' or '*arithmetic*')")
	extractCmd.Flags().StringVar(&flags.FuncPrefix, "prefix", "", "Test-function name prefix to recognize (default \"Test\")")
	extractCmd.Flags().BoolVar(&flags.Canonical, "canonical", false, "Emit RFC 8785 canonical JSON for byte-stable diffing")
	rootCmd.AddCommand(extractCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List discovered test files",
		Long:  "Scan and list test files, or the test functions inside them, without saving any extraction",
		Args:  cobra.ExactArgs(1),
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards)")
	listCmd.Flags().StringVar(&flags.FuncPrefix, "prefix", "", "Test-function name prefix to recognize (default \"Test\")")
	listCmd.Flags().BoolVarP(&flags.Functions, "functions", "c", false, "List test functions and case counts instead of files")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse extracted test cases interactively",
		Long:  "Display the last saved extraction output in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
