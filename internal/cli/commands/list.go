package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cqlex/internal/config"
	"cqlex/internal/discovery"
	"cqlex/internal/domain"
	"cqlex/internal/extract"
	"cqlex/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input path does not exist: %s", path)
	}

	var files []string
	if info.IsDir() {
		files, err = lc.scanner.Scan(path)
		if err != nil {
			return err
		}
		files = lc.filter.FilterByName(files, lc.config.Flags.NameFilter)
	} else {
		files = []string{path}
	}

	if !lc.config.Flags.Functions {
		lc.formatter.PrintFileList(files)
		return nil
	}

	dialect := extract.DefaultDialect()
	dialect.FuncPrefix = lc.config.GetFuncPrefix()
	extractor := extract.NewExtractor(dialect)

	// Functions with zero cases are still listed here; only the saved
	// extraction omits them.
	var listed []domain.FileExtraction
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		src := string(content)
		var functions []domain.FunctionCases
		for _, name := range extractor.ListFunctions(src) {
			functions = append(functions, domain.FunctionCases{
				Function: name,
				Cases:    extractor.ExtractFunction(src, name),
			})
		}
		if len(functions) > 0 {
			listed = append(listed, domain.FileExtraction{
				Source:    filepath.Base(file),
				Functions: functions,
			})
		}
	}

	lc.formatter.PrintFunctionList(listed)
	return nil
}
