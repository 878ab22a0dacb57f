package config

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the configuration store Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			home, err := domain.DefaultHome()
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(home, domain.ConfigFileName)), nil
		},
	})
}
