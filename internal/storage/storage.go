package storage

import "cqlex/internal/domain"

// Storage persists and loads extraction output (e.g. for the view command).
type Storage interface {
	Save(output *domain.ExtractOutput) error
	Load() (*domain.ExtractOutput, error)
	// SaveFile writes a single file's extraction in the portable
	// {"source":..., "functions":...} shape to the given path, or to
	// stdout when path is empty.
	SaveFile(result *domain.FileExtraction, path string) error
}
