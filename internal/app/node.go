package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filedep/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/adapters/token"    //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/filedep/internal/core/ports"
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
			config.NodeID,
			fs.NodeID,
			manifest.NodeID,
			token.NodeID,
			watcher.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fileSystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := graft.Dep[ports.ChangeTokenSource](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fileSystem, reader, tokens, fileWatcher, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
