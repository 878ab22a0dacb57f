package ports

import "go.trai.ch/ppd/internal/core/domain"

// ConfigStore persists the deployment configuration.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Load returns the configuration, or nil, nil when none has been written yet.
	Load() (*domain.Config, error)
	// Save writes the configuration.
	Save(cfg *domain.Config) error
	// Path returns the location of the configuration file.
	Path() string
}
