package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cqlex/internal/config"
	"cqlex/internal/discovery"
	"cqlex/internal/domain"
	"cqlex/internal/extract"
	"cqlex/internal/storage"
	"cqlex/internal/ui"
)

// ExtractCommand handles the extract command
type ExtractCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewExtractCommand creates a new ExtractCommand
func NewExtractCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *ExtractCommand {
	return &ExtractCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (ec *ExtractCommand) Execute(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input path does not exist: %s", path)
	}

	dialect := extract.DefaultDialect()
	dialect.FuncPrefix = ec.config.GetFuncPrefix()
	extractor := extract.NewExtractor(dialect)

	if info.IsDir() {
		return ec.extractDir(extractor, path)
	}
	return ec.extractFile(extractor, path)
}

// extractFile extracts one test file and writes the portable per-file shape.
func (ec *ExtractCommand) extractFile(extractor *extract.Extractor, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	result := &domain.FileExtraction{
		Source:    filepath.Base(path),
		Functions: extractor.ExtractFile(string(content)),
	}

	ec.formatter.PrintFileSummary(result)

	output := ec.config.Flags.Output
	if err := ec.storage.SaveFile(result, output); err != nil {
		return fmt.Errorf("failed to save extraction: %w", err)
	}
	if output != "" {
		fmt.Fprintln(os.Stderr, color.CyanString("Written to %s", output))
	}
	return nil
}

// extractDir scans a directory tree, extracts every test file, and saves the
// aggregate output for the formatter and the view command.
func (ec *ExtractCommand) extractDir(extractor *extract.Extractor, root string) error {
	files, err := ec.scanner.Scan(root)
	if err != nil {
		return err
	}
	files = ec.filter.FilterByName(files, ec.config.Flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	progressBar := ui.NewProgressBar(len(files))

	start := time.Now()
	output := &domain.ExtractOutput{}
	caseCount, opaqueCount := 0, 0
	for i, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			// Unreadable files are skipped, the scan continues.
			progressBar.Update(i+1, caseCount, opaqueCount)
			continue
		}

		functions := extractor.ExtractFile(string(content))
		if len(functions) > 0 {
			result := domain.FileExtraction{
				Source:    filepath.Base(file),
				Functions: functions,
			}
			output.Files = append(output.Files, result)
			caseCount += result.TotalCases()
			opaqueCount += result.OpaqueCases()
		}
		progressBar.Update(i+1, caseCount, opaqueCount)
	}
	progressBar.Finish()
	duration := time.Since(start)

	totalFunctions := 0
	for _, file := range output.Files {
		totalFunctions += len(file.Functions)
	}
	output.Meta = domain.ExtractMeta{
		TotalFiles:      len(output.Files),
		TotalFunctions:  totalFunctions,
		TotalCases:      caseCount,
		OpaqueCases:     opaqueCount,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	if err := ec.storage.Save(output); err != nil {
		return fmt.Errorf("failed to save extraction: %w", err)
	}

	return ec.formatter.PrintMetaStats()
}
