// Package app implements the application layer for shopfront.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/shopfront/internal/adapters/detector"
	"go.trai.ch/shopfront/internal/adapters/tui"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/shopfront/internal/engine/cartstore"
	"go.trai.ch/shopfront/internal/ui/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store      *cartstore.Store
	catalog    ports.ProductLookup
	logger     ports.Logger
	tracer     ports.Tracer
	settings   *domain.Settings
	stdout     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance over an already loaded cart store.
func New(
	store *cartstore.Store,
	catalog ports.ProductLookup,
	log ports.Logger,
	tracer ports.Tracer,
	settings *domain.Settings,
) *App {
	return &App{
		store:    store,
		catalog:  catalog,
		logger:   log,
		tracer:   tracer,
		settings: settings,
		stdout:   os.Stdout,
	}
}

// WithOutput redirects rendered output away from stdout.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Browse lists the catalog.
func (a *App) Browse(ctx context.Context) error {
	products, err := a.catalog.List(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to list catalog")
	}
	fmt.Fprint(a.stdout, render.Products(products, a.settings.Currency))
	return nil
}

// AddToCart merges a selection into the cart, snapshotting the current
// catalog price for new lines. The quantity must be positive and the
// product must exist in the catalog.
func (a *App) AddToCart(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int) error {
	if quantity <= 0 {
		return zerr.With(domain.ErrInvalidQuantity, "quantity", quantity)
	}

	product, err := a.catalog.GetByID(ctx, id)
	if err != nil {
		return err
	}

	a.store.AddLine(ctx, id, variant, quantity, product.PriceCents)
	return nil
}

// RemoveFromCart removes the line matching the identity key. Removing an
// absent line is a quiet no-op.
func (a *App) RemoveFromCart(ctx context.Context, id domain.ProductID, variant domain.Variant) error {
	a.store.RemoveLine(ctx, id, variant)
	return nil
}

// SetQuantity overwrites the quantity of an existing line. Zero removes
// the line; an unknown key is a quiet no-op.
func (a *App) SetQuantity(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int) error {
	a.store.SetQuantity(ctx, id, variant, quantity)
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.store.Clear(ctx)
	return nil
}

// ShowCart renders the cart with resolved product titles. It waits for
// in-flight hydration so a freshly loaded cart shows titles, not raw
// identifiers.
func (a *App) ShowCart(_ context.Context) error {
	a.store.WaitForHydration()
	fmt.Fprint(a.stdout, render.Cart(a.store.LinesWithProducts(), a.settings.Currency))
	return nil
}

// catalogFollower is implemented by product lookups that can follow their
// backing data source. Watch mode starts it so catalog edits are picked up
// while the view is open; short-lived commands never pay for the watcher.
type catalogFollower interface {
	Watch(ctx context.Context) error
}

// Watch follows the cart until the context is cancelled or the user
// quits. On a TTY it runs the live view; otherwise it prints one summary
// line per change. The catalog reloads itself for the duration of the
// watch when the lookup supports it.
func (a *App) Watch(ctx context.Context, modeFlag string) error {
	if follower, ok := a.catalog.(catalogFollower); ok {
		if err := follower.Watch(ctx); err != nil {
			a.logger.Error(zerr.Wrap(err, "catalog live reload disabled"))
		}
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), modeFlag)

	if mode == detector.ModeTUI {
		return tui.Run(ctx, a.store, a.settings.Currency, a.teaOptions...)
	}

	fmt.Fprintln(a.stdout, render.WatchLine(a.store.LinesWithProducts(), a.settings.Currency))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.store.Changes():
			fmt.Fprintln(a.stdout, render.WatchLine(a.store.LinesWithProducts(), a.settings.Currency))
		}
	}
}

// Checkout renders the order summary and empties the cart. An empty cart
// is an error.
func (a *App) Checkout(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "Checking out",
		ports.WithAttribute("items", a.store.TotalItems()))
	defer span.End()

	if a.store.TotalItems() == 0 {
		span.RecordError(domain.ErrCartEmpty)
		return domain.ErrCartEmpty
	}

	a.store.WaitForHydration()
	lines := a.store.LinesWithProducts()
	fmt.Fprint(a.stdout, render.CheckoutSummary(lines, a.settings.Currency))

	span.SetAttribute("total_cents", a.store.TotalPriceCents())
	a.store.Clear(ctx)
	return nil
}

// Close flushes any pending cart snapshot write and waits for in-flight
// hydration. It must run before process exit so a mutation inside the
// debounce window is not lost.
func (a *App) Close() {
	a.store.Close()
}
