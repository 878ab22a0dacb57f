package ports

import (
	"context"

	"go.trai.ch/ppd/internal/core/domain"
)

// Launcher starts the chosen application as an independent process.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch starts program with file as its only argument and the file's parent
	// as working directory. It returns once the process has started.
	Launch(ctx context.Context, program domain.Program, file string, cfg *domain.Config) error
}
