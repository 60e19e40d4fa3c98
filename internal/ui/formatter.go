package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"cqlex/internal/config"
	"cqlex/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintFileSummary writes the per-file count report to stderr, keeping
// stdout free for the JSON itself.
func (f *Formatter) PrintFileSummary(result *domain.FileExtraction) {
	fmt.Fprintln(os.Stderr, color.CyanString("Extracted %d tests from %d functions",
		result.TotalCases(), len(result.Functions)))
}

// PrintMetaStats reads and displays meta statistics from the JSON output file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.ExtractOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Extraction Statistics                      ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Test Files")
	color.White("%-27d │\n", meta.TotalFiles)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Test Functions")
	color.White("%-27d │\n", meta.TotalFunctions)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Test Cases")
	color.Green("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Opaque Expected Values")
	color.Yellow("%-27d │\n", meta.OpaqueCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.TotalCases == 0 {
		color.Yellow("No test cases extracted")
	} else {
		color.Green("✓ Extracted %d test case(s) from %d function(s)", meta.TotalCases, meta.TotalFunctions)
	}
	fmt.Println()

	return nil
}

// PrintFunctionList prints files with their test functions and case counts.
func (f *Formatter) PrintFunctionList(files []domain.FileExtraction) {
	for _, file := range files {
		color.Cyan("%s", file.Source)
		for _, fn := range file.Functions {
			fmt.Printf("  %s ", fn.Function)
			color.White("(%d case(s))\n", len(fn.Cases))
		}
	}
}

// PrintFileList prints discovered test file paths.
func (f *Formatter) PrintFileList(files []string) {
	for _, file := range files {
		color.Yellow("%s", filepath.ToSlash(file))
	}
	fmt.Println()
	color.Cyan("%d test file(s) found", len(files))
}
