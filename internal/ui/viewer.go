package ui

import "ptsplit/internal/domain"

// Viewer displays the generated groups in an interactive TUI
type Viewer interface {
	View(groups []domain.Group) error
}
