package cartfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shopfront/internal/adapters/config"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
)

// NodeID is the unique identifier for the cart snapshot store Graft node.
const NodeID graft.ID = "adapter.cart_snapshots"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.CartDir), nil
		},
	})
}
