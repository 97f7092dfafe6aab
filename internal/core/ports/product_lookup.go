// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/shopfront/internal/core/domain"
)

// ProductLookup resolves product identifiers against the catalog service.
//
//go:generate mockgen -source=product_lookup.go -destination=mocks/mock_product_lookup.go -package=mocks
type ProductLookup interface {
	// GetByID returns the product record for the given identifier.
	// It returns domain.ErrProductNotFound if the identifier is unknown.
	GetByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)

	// List returns all products currently known to the catalog,
	// ordered by identifier.
	List(ctx context.Context) ([]domain.Product, error)
}
