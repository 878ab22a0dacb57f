package history

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the history store Graft node.
const NodeID graft.ID = "adapter.history"

func init() {
	graft.Register(graft.Node[ports.HistoryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.HistoryStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			home, err := domain.DefaultHome()
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(home, domain.HistoryFileName), log), nil
		},
	})
}
