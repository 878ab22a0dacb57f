package signature

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the signature checker Graft node.
const NodeID graft.ID = "engine.signature"

func init() {
	graft.Register(graft.Node[ports.SignatureChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SignatureChecker, error) {
			return NewChecker(), nil
		},
	})
}
