package ports

import (
	"context"

	"go.trai.ch/shopfront/internal/core/domain"
)

// SnapshotStore persists the cart ledger between sessions.
//
// The snapshot is the sole cross-session source of truth for the cart.
// Implementations must treat an absent snapshot as an empty cart rather
// than an error.
//
//go:generate mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot stored under the given profile key.
	// A missing snapshot yields (nil, nil). A snapshot that cannot be
	// decoded yields an error; callers fall back to an empty cart.
	Load(ctx context.Context, profile string) ([]domain.CartLine, error)

	// Save atomically replaces the snapshot stored under the given
	// profile key with the provided lines.
	Save(ctx context.Context, profile string, lines []domain.CartLine) error
}
