package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ppd/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ppd/internal/adapters/history" //nolint:depguard // Wired in app layer
	"go.trai.ch/ppd/internal/adapters/install" //nolint:depguard // Wired in app layer
	"go.trai.ch/ppd/internal/adapters/journal" //nolint:depguard // Wired in app layer
	"go.trai.ch/ppd/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/ppd/internal/engine/decision"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			decision.NodeID,
			config.NodeID,
			history.NodeID,
			journal.NodeID,
			install.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	engine, err := graft.Dep[*decision.Engine](ctx)
	if err != nil {
		return nil, err
	}

	configs, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	hist, err := graft.Dep[ports.HistoryStore](ctx)
	if err != nil {
		return nil, err
	}

	jrnl, err := graft.Dep[ports.Journal](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[*install.Inspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	home, err := domain.DefaultHome()
	if err != nil {
		return nil, err
	}

	return New(engine, configs, hist, jrnl, inspector, log).WithHome(home), nil
}
