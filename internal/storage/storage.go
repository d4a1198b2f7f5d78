package storage

import (
	"ptsplit/internal/config"
	"ptsplit/internal/domain"
)

// Storage persists and loads linear fallback reports
type Storage interface {
	Save(report *domain.FallbackReport) error
	Load() (*domain.FallbackReport, error)
}

// JSONStorage stores the report in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
