package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for test source files in a directory tree.
type Scanner struct {
	suffix   string
	skipDirs map[string]bool
}

// NewScanner creates a Scanner matching files that end in suffix, skipping
// the given directory names.
func NewScanner(suffix string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{suffix: suffix, skipDirs: skipMap}
}

// Scan finds all test files under the given root directory.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testFiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), s.suffix) {
			testFiles = append(testFiles, path)
		}
		return nil
	})

	return testFiles, err
}
