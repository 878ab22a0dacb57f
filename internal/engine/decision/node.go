package decision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/history"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/adapters/journal"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/adapters/launcher"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/ppd/internal/engine/probe"
	"go.trai.ch/ppd/internal/engine/signature"
)

// NodeID is the unique identifier for the decision engine Graft node.
const NodeID graft.ID = "engine.decision"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			history.NodeID,
			signature.NodeID,
			probe.NodeID,
			launcher.NodeID,
			journal.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			hist, err := graft.Dep[ports.HistoryStore](ctx)
			if err != nil {
				return nil, err
			}
			checker, err := graft.Dep[ports.SignatureChecker](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}
			launch, err := graft.Dep[ports.Launcher](ctx)
			if err != nil {
				return nil, err
			}
			jrnl, err := graft.Dep[ports.Journal](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(hist, checker, prober, launch, jrnl, log, tracer), nil
		},
	})
}
