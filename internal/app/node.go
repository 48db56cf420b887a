package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bakery/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/adapters/toolchain"          //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/bakery/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			builder.NodeID,
			toolchain.LocatorNodeID,
			toolchain.FactoryNodeID,
			shell.NodeID,
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
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	projectBuilder, err := graft.Dep[ports.ProjectBuilder](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ToolchainLocator](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, projectBuilder, locator, factory, executor, watch, log), nil
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

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
