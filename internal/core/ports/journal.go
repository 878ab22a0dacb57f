package ports

import (
	"context"

	"go.trai.ch/ppd/internal/core/domain"
)

// Journal is the append-only record of decisions.
//
//go:generate mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Open prepares the underlying database so later calls do not block on it.
	Open(ctx context.Context) error
	// Append records an entry. An empty ID is assigned by the journal.
	Append(ctx context.Context, entry domain.JournalEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	// Close releases the underlying database.
	Close() error
}
