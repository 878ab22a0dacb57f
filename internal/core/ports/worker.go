package ports

import (
	"context"

	"go.trai.ch/ppd/internal/core/domain"
)

// Worker is one isolated probe process.
//
//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks
type Worker interface {
	// Run starts the process and blocks until it exits, passing every stdout
	// line to onLine. Cancelling ctx kills the process.
	Run(ctx context.Context, onLine func(line string)) error
}

// WorkerFactory builds the probe worker for one application.
type WorkerFactory interface {
	NewWorker(app domain.Program, file string, cfg *domain.Config) (Worker, error)
}
