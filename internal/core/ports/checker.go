package ports

import (
	"context"

	"go.trai.ch/ppd/internal/core/domain"
)

// SignatureChecker identifies a file from its leading bytes.
//
//go:generate mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type SignatureChecker interface {
	// Check returns the matching identity or Unknown.
	// It fails only when the file cannot be opened or read.
	Check(path string) (domain.Program, error)
}

// Prober opens a file through both applications to see which accepts it.
type Prober interface {
	// Probe returns the first application that loaded the file, or Unknown.
	Probe(ctx context.Context, file string, cfg *domain.Config) domain.Program
	// Wait joins every worker started by Probe.
	Wait() error
}
