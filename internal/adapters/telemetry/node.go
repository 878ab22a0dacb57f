package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used for decision tiers.
const InstrumentationName = "ppd"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
