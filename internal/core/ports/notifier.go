package ports

import "go.trai.ch/shopfront/internal/core/domain"

// CartEventKind classifies a cart mutation for notification purposes.
type CartEventKind uint8

const (
	// EventLineAdded indicates a selection was merged into the cart.
	EventLineAdded CartEventKind = iota
	// EventLineRemoved indicates a line left the cart.
	EventLineRemoved
	// EventQuantityChanged indicates a line quantity was overwritten.
	EventQuantityChanged
	// EventCartCleared indicates the cart was emptied.
	EventCartCleared
)

// CartEvent describes a single cart mutation.
type CartEvent struct {
	Kind       CartEventKind
	ProductID  domain.ProductID
	Variant    domain.Variant
	Quantity   int
	TotalItems int
}

// Notifier receives fire-and-forget notifications about cart mutations.
//
// The cart store never depends on a notification being delivered; a
// Notifier must not block and must not return errors to the caller.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Notify reports a cart mutation to the user.
	Notify(event CartEvent)
}
