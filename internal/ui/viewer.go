package ui

import "cqlex/internal/domain"

// Viewer displays extraction output in an interactive TUI
type Viewer interface {
	View(output *domain.ExtractOutput) error
}
