package scripting

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the probe worker factory Graft node.
const NodeID graft.ID = "adapter.scripting"

func init() {
	graft.Register(graft.Node[ports.WorkerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
