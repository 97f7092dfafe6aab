package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shopfront/internal/adapters/cartfile"
	"go.trai.ch/shopfront/internal/adapters/catalog"
	"go.trai.ch/shopfront/internal/adapters/config"
	"go.trai.ch/shopfront/internal/adapters/logger"
	"go.trai.ch/shopfront/internal/adapters/telemetry"
	"go.trai.ch/shopfront/internal/adapters/toast"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/shopfront/internal/engine/cartstore"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the wired application for the CLI entry point.
type Components struct {
	App      *App
	Store    *cartstore.Store
	Logger   ports.Logger
	Settings *domain.Settings
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cartfile.NodeID,
			catalog.NodeID,
			config.SettingsNodeID,
			logger.NodeID,
			telemetry.NodeID,
			toast.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			lookup, err := graft.Dep[ports.ProductLookup](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
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
			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			store := cartstore.NewStore(
				snapshots,
				lookup,
				log,
				notifier,
				tracer,
				settings.CartProfile,
				settings.DebounceWindow,
			)
			store.Load(ctx)

			return &Components{
				App:      New(store, lookup, log, tracer, settings),
				Store:    store,
				Logger:   log,
				Settings: settings,
			}, nil
		},
	})
}
