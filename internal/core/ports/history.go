package ports

import "go.trai.ch/ppd/internal/core/domain"

// HistoryStore remembers which program last opened a file.
//
//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type HistoryStore interface {
	// Load returns the whole history keyed by absolute path.
	// An absent or malformed store yields an empty map; Load never fails.
	Load() map[string]string
	// Save replaces the whole history.
	Save(entries map[string]string) error
	// Set records program for path, overwriting any previous entry.
	Set(path string, program domain.Program) error
}
