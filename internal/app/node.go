package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/advent/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/puzzles"   //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/advent/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			puzzles.NodeID,
			config.NodeID,
			fs.ReaderNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	registry, err := graft.Dep[ports.PuzzleRegistry](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	input, err := graft.Dep[ports.InputSource](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.AnswerStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	inputWatcher, err := graft.Dep[ports.InputWatcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(registry, loader, input, hasher, stores, tracer, collector, inputWatcher, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
