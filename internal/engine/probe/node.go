package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/adapters/scripting" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the prober Graft node.
const NodeID graft.ID = "engine.probe"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scripting.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Prober, error) {
			factory, err := graft.Dep[ports.WorkerFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(factory, log), nil
		},
	})
}
