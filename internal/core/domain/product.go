package domain

// ProductID is an opaque, stable identifier for a catalog product.
type ProductID string

// String returns the raw identifier value.
func (id ProductID) String() string {
	return string(id)
}

// Product is a catalog record resolved for a cart line.
//
// Prices are stored in minor currency units (cents) to keep arithmetic exact.
type Product struct {
	ID          ProductID
	Title       string
	Description string
	PriceCents  int64
	Currency    string
	ImageURL    string
	Tags        []string
}

// HydratedLine is a cart line joined with its resolved product record.
// Product is nil until the hydrator has resolved the identifier; consumers
// must treat an unresolved product as a legitimate, renderable state.
type HydratedLine struct {
	CartLine
	Product *Product
}
