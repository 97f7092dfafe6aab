package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shopfront/internal/adapters/config"
	"go.trai.ch/shopfront/internal/adapters/logger"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.ProductLookup]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProductLookup, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.CatalogPath, log), nil
		},
	})
}
