package install

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the setup inspector Graft node.
const NodeID graft.ID = "adapter.install"

func init() {
	graft.Register(graft.Node[*Inspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Inspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(log), nil
		},
	})
}
