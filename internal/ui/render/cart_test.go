package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/ui/render"
)

func hydrated(id string, qty int, priceCents int64, title string) domain.HydratedLine {
	line := domain.HydratedLine{
		CartLine: domain.CartLine{
			ProductID:      domain.ProductID(id),
			Quantity:       qty,
			UnitPriceCents: priceCents,
		},
	}
	if title != "" {
		line.Product = &domain.Product{ID: domain.ProductID(id), Title: title, PriceCents: priceCents}
	}
	return line
}

func TestMoney(t *testing.T) {
	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{2500, "USD", "$25.00"},
		{99, "USD", "$0.99"},
		{180050, "EUR", "€1800.50"},
		{700, "GBP", "£7.00"},
		{1200, "CHF", "CHF 12.00"},
		{0, "USD", "$0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.Money(tt.cents, tt.currency))
	}
}

func TestCart_Empty(t *testing.T) {
	out := render.Cart(nil, "USD")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestCart_LinesAndTotals(t *testing.T) {
	lines := []domain.HydratedLine{
		hydrated("sku-001", 2, 2500, "Wool Beanie"),
		hydrated("sku-002", 1, 1800, ""),
	}
	lines[0].Variant = domain.Variant{"size": "M"}

	out := render.Cart(lines, "USD")

	assert.Contains(t, out, "Wool Beanie (size=M)")
	assert.Contains(t, out, "$25.00")
	assert.Contains(t, out, "$50.00")
	// The unresolved line falls back to the raw identifier.
	assert.Contains(t, out, "sku-002")
	assert.Contains(t, out, "(loading)")
	assert.Contains(t, out, "3 items, total $68.00")
}

func TestCart_SingularItemCount(t *testing.T) {
	out := render.Cart([]domain.HydratedLine{
		hydrated("sku-001", 1, 2500, "Wool Beanie"),
	}, "USD")

	assert.Contains(t, out, "1 item, total $25.00")
	assert.NotContains(t, out, "1 items")
}

func TestCheckoutSummary(t *testing.T) {
	lines := []domain.HydratedLine{
		hydrated("sku-001", 2, 2500, "Wool Beanie"),
		hydrated("sku-002", 3, 1000, "Canvas Tote"),
	}

	out := render.CheckoutSummary(lines, "USD")

	assert.Contains(t, out, "Order summary")
	assert.Contains(t, out, "Wool Beanie")
	assert.Contains(t, out, "Canvas Tote")
	assert.Contains(t, out, "checked out 5 items for $80.00")
}

func TestProducts(t *testing.T) {
	products := []domain.Product{
		{ID: "sku-001", Title: "Wool Beanie", Description: "A warm beanie.", PriceCents: 2500, Tags: []string{"winter"}},
		{ID: "sku-002", Title: "Canvas Tote", PriceCents: 1800},
	}

	out := render.Products(products, "USD")

	assert.Contains(t, out, "Catalog")
	assert.Contains(t, out, "sku-001")
	assert.Contains(t, out, "A warm beanie.")
	assert.Contains(t, out, "winter")
	assert.Contains(t, out, "$18.00")

	// Listing order follows the input order.
	assert.Less(t, strings.Index(out, "sku-001"), strings.Index(out, "sku-002"))
}

func TestProducts_Empty(t *testing.T) {
	out := render.Products(nil, "USD")
	assert.Contains(t, out, "The catalog is empty.")
}

func TestWatchLine(t *testing.T) {
	lines := []domain.HydratedLine{
		hydrated("sku-001", 2, 2500, "Wool Beanie"),
	}
	assert.Equal(t, "cart: 2 items, $50.00", render.WatchLine(lines, "USD"))
	assert.Equal(t, "cart: 0 items, $0.00", render.WatchLine(nil, "USD"))
}
