package journal

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
)

// NodeID is the unique identifier for the usage journal Graft node.
const NodeID graft.ID = "adapter.journal"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Journal, error) {
			home, err := domain.DefaultHome()
			if err != nil {
				return nil, err
			}
			return NewStore(filepath.Join(home, domain.JournalFileName)), nil
		},
	})
}
