package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clustertap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/clustertap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/clustertap/internal/adapters/sink"      //nolint:depguard // Wired in app layer
	"go.trai.ch/clustertap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/clustertap/internal/core/ports"
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
	// Shutdown flushes and stops the tracer provider. It may be nil.
	Shutdown func(context.Context) error
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
			sink.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
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
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			c := &Components{App: app, Logger: log}
			if s, ok := tracer.(shutdowner); ok {
				c.Shutdown = s.Shutdown
			}
			return c, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
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

	metrics, err := graft.Dep[*telemetry.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	hub, err := graft.Dep[*sink.Hub](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, metrics, hub), nil
}
