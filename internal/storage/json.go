package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"cqlex/internal/config"
	"cqlex/internal/domain"
)

// JSONStorage stores extraction output in a JSON file under the configured
// output path. With the canonical flag set, emitted bytes are the RFC 8785
// canonical form so fixtures diff byte-for-byte across tools.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

func (s *JSONStorage) encode(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output: %w", err)
	}
	if s.cfg.Flags.Canonical {
		data, err = jsoncanonicalizer.Transform(data)
		if err != nil {
			return nil, fmt.Errorf("canonicalize output: %w", err)
		}
	}
	return data, nil
}

// Save writes the aggregate extraction output to the configured JSON path.
func (s *JSONStorage) Save(output *domain.ExtractOutput) error {
	data, err := s.encode(output)
	if err != nil {
		return err
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Load reads the last extraction output from the configured JSON path.
func (s *JSONStorage) Load() (*domain.ExtractOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read output file: %w", err)
	}
	var output domain.ExtractOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse output: %w", err)
	}
	return &output, nil
}

// SaveFile writes one file's extraction in the portable per-file shape.
func (s *JSONStorage) SaveFile(result *domain.FileExtraction, path string) error {
	data, err := s.encode(result)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
