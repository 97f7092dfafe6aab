// Package catalog implements product lookup against a YAML catalog file.
package catalog

import (
	"context"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProductLookup = (*Catalog)(nil)

// Catalog implements ports.ProductLookup backed by an in-memory product
// table loaded from a YAML file. The table is replaced wholesale on reload;
// reads never observe a partially applied catalog.
type Catalog struct {
	path   string
	logger ports.Logger

	mu       sync.RWMutex
	products map[domain.ProductID]domain.Product
}

// New creates a catalog from the file at the given path. An unreadable
// file yields an empty catalog rather than an error, so the cart remains
// usable while every lookup resolves to not found.
func New(path string, logger ports.Logger) *Catalog {
	c := &Catalog{
		path:     path,
		logger:   logger,
		products: make(map[domain.ProductID]domain.Product),
	}
	if err := c.Reload(); err != nil {
		logger.Error(zerr.Wrap(err, "starting with an empty catalog"))
	}
	return c
}

// GetByID returns the product record for the given identifier.
func (c *Catalog) GetByID(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return nil, zerr.With(domain.ErrProductNotFound, "product", id.String())
	}
	return &product, nil
}

// List returns all products ordered by identifier.
func (c *Catalog) List(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0, len(c.products))
	for _, product := range c.products {
		out = append(out, product)
	}
	slices.SortFunc(out, func(a, b domain.Product) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Reload re-reads the catalog file and swaps in the new product table. On
// failure the previous table stays in place.
func (c *Catalog) Reload() error {
	// #nosec G304 -- path comes from the resolved configuration
	data, err := os.ReadFile(c.path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCatalogReadFailed.Error())
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
	}

	products := make(map[domain.ProductID]domain.Product, len(file.Products))
	for _, dto := range file.Products {
		if dto.ID == "" {
			c.logger.Warn("skipping catalog entry without an id")
			continue
		}
		id := domain.ProductID(dto.ID)
		if _, exists := products[id]; exists {
			c.logger.Warn("duplicate catalog entry for " + dto.ID + ", keeping the first")
			continue
		}
		products[id] = domain.Product{
			ID:          id,
			Title:       dto.Title,
			Description: dto.Description,
			PriceCents:  dto.PriceCents,
			Currency:    dto.Currency,
			ImageURL:    dto.Image,
			Tags:        dto.Tags,
		}
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return nil
}

// catalogFile represents the structure of the catalog YAML file.
type catalogFile struct {
	Products []productDTO `yaml:"products"`
}

// productDTO represents a product entry in the catalog file.
type productDTO struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PriceCents  int64    `yaml:"price_cents"`
	Currency    string   `yaml:"currency"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
}
