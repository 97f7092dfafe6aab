package cartstore

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Store owns the cart ledger, the product cache and the persistence
// scheduler. All mutations are serialized behind a mutex and return
// immediately; the only asynchronous work is product hydration and the
// debounced snapshot write.
//
// Failures never propagate to callers: fetch failures degrade the affected
// line to an unresolved product, persistence failures are logged and the
// in-memory state stays authoritative.
type Store struct {
	snapshots ports.SnapshotStore
	lookup    ports.ProductLookup
	logger    ports.Logger
	notifier  ports.Notifier
	tracer    ports.Tracer

	profile  string
	debounce *Debouncer

	mu       sync.RWMutex
	ledger   *domain.Ledger
	cache    map[domain.ProductID]domain.Product
	inflight map[domain.ProductID]struct{}

	wg      sync.WaitGroup
	changes chan struct{}
}

// NewStore creates a new cart store for the given snapshot profile.
// A non-positive debounce window falls back to the default.
func NewStore(
	snapshots ports.SnapshotStore,
	lookup ports.ProductLookup,
	logger ports.Logger,
	notifier ports.Notifier,
	tracer ports.Tracer,
	profile string,
	window time.Duration,
) *Store {
	if profile == "" {
		profile = domain.DefaultCartProfile
	}
	if window <= 0 {
		window = domain.DefaultDebounceWindow
	}

	s := &Store{
		snapshots: snapshots,
		lookup:    lookup,
		logger:    logger,
		notifier:  notifier,
		tracer:    tracer,
		profile:   profile,
		ledger:    domain.NewLedger(),
		cache:     make(map[domain.ProductID]domain.Product),
		inflight:  make(map[domain.ProductID]struct{}),
		changes:   make(chan struct{}, 1),
	}
	s.debounce = NewDebouncer(window, s.persist)
	return s
}

// Load hydrates the ledger from the persisted snapshot and starts product
// hydration for the referenced identifiers. An absent or undecodable
// snapshot yields an empty cart; the failure is logged, never surfaced.
func (s *Store) Load(ctx context.Context) {
	lines, err := s.snapshots.Load(ctx, s.profile)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "starting with an empty cart"))
		lines = nil
	}

	s.mu.Lock()
	s.ledger = domain.LedgerFromLines(lines)
	missing := s.missingLocked()
	s.mu.Unlock()

	s.startHydration(ctx, missing)
	s.signal()
}

// AddLine merges a selection into the cart. The unit price is snapshotted
// on first add and left unchanged when the line already exists.
func (s *Store) AddLine(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int, unitPriceCents int64) {
	s.mu.Lock()
	changed := s.ledger.AddLine(id, variant, quantity, unitPriceCents)
	lines := s.ledger.Lines()
	totalItems := s.ledger.TotalItems()
	missing := s.missingLocked()
	s.mu.Unlock()

	s.debounce.Schedule(lines)
	s.startHydration(ctx, missing)

	if changed {
		s.notifier.Notify(ports.CartEvent{
			Kind:       ports.EventLineAdded,
			ProductID:  id,
			Variant:    variant,
			Quantity:   quantity,
			TotalItems: totalItems,
		})
		s.signal()
	}
}

// RemoveLine deletes the line matching the identity key. Removing an
// absent line is a no-op.
func (s *Store) RemoveLine(ctx context.Context, id domain.ProductID, variant domain.Variant) {
	s.mu.Lock()
	changed := s.ledger.RemoveLine(id, variant)
	lines := s.ledger.Lines()
	totalItems := s.ledger.TotalItems()
	s.evictIfEmptyLocked()
	s.mu.Unlock()

	s.debounce.Schedule(lines)

	if changed {
		s.notifier.Notify(ports.CartEvent{
			Kind:       ports.EventLineRemoved,
			ProductID:  id,
			Variant:    variant,
			TotalItems: totalItems,
		})
		s.signal()
	}
}

// SetQuantity overwrites the quantity of the matching line. A quantity of
// zero or less removes the line; an unknown key is a no-op.
func (s *Store) SetQuantity(ctx context.Context, id domain.ProductID, variant domain.Variant, quantity int) {
	s.mu.Lock()
	existed := s.ledger.Contains(id, variant)
	changed := s.ledger.SetQuantity(id, variant, quantity)
	lines := s.ledger.Lines()
	totalItems := s.ledger.TotalItems()
	s.evictIfEmptyLocked()
	s.mu.Unlock()

	s.debounce.Schedule(lines)

	if !changed {
		return
	}

	kind := ports.EventQuantityChanged
	if existed && quantity <= 0 {
		kind = ports.EventLineRemoved
	}
	s.notifier.Notify(ports.CartEvent{
		Kind:       kind,
		ProductID:  id,
		Variant:    variant,
		Quantity:   quantity,
		TotalItems: totalItems,
	})
	s.signal()
}

// Clear empties the cart and evicts the product cache.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	changed := s.ledger.Clear()
	s.evictIfEmptyLocked()
	s.mu.Unlock()

	s.debounce.Schedule(nil)

	if changed {
		s.notifier.Notify(ports.CartEvent{Kind: ports.EventCartCleared})
		s.signal()
	}
}

// Contains reports whether a line with the given identity key exists.
func (s *Store) Contains(id domain.ProductID, variant domain.Variant) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Contains(id, variant)
}

// TotalItems returns the sum of quantities over all lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.TotalItems()
}

// TotalPriceCents returns the cart total in cents.
func (s *Store) TotalPriceCents() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.TotalPriceCents()
}

// Lines returns the ordered cart lines.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Lines()
}

// LinesWithProducts returns the joined view of cart lines and resolved
// product records. Product is nil for identifiers that have not been
// hydrated yet.
func (s *Store) LinesWithProducts() []domain.HydratedLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.ledger.Lines()
	out := make([]domain.HydratedLine, 0, len(lines))
	for _, line := range lines {
		joined := domain.HydratedLine{CartLine: line}
		if product, ok := s.cache[line.ProductID]; ok {
			joined.Product = &product
		}
		out = append(out, joined)
	}
	return out
}

// Changes returns a channel that receives a signal after every state
// change, coalescing bursts. Consumers re-read the store on each signal.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

// WaitForHydration blocks until all in-flight product fetches have
// settled.
func (s *Store) WaitForHydration() {
	s.wg.Wait()
}

// Close flushes any pending snapshot write and waits for in-flight
// hydration fetches. The in-memory cart stays usable after Close; only
// the pending write is forced out.
func (s *Store) Close() {
	s.debounce.Flush()
	s.wg.Wait()
}

// missingLocked returns the referenced product identifiers that are
// neither cached nor currently being fetched, marking them in-flight.
// Callers must hold s.mu.
func (s *Store) missingLocked() []domain.ProductID {
	var missing []domain.ProductID
	for _, id := range s.ledger.DistinctProductIDs() {
		if _, ok := s.cache[id]; ok {
			continue
		}
		if _, ok := s.inflight[id]; ok {
			continue
		}
		s.inflight[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}

// evictIfEmptyLocked wipes the product cache when the ledger has just
// become empty. Wholesale eviction trades memory for simplicity; entries
// are never evicted individually. Callers must hold s.mu.
func (s *Store) evictIfEmptyLocked() {
	if s.ledger.IsEmpty() && len(s.cache) > 0 {
		s.cache = make(map[domain.ProductID]domain.Product)
	}
}

// startHydration fetches the given identifiers in the background. Fetches
// are not cancelled when an identifier later leaves the ledger; a late
// result lands in the cache and stays unused until the next eviction.
func (s *Store) startHydration(ctx context.Context, ids []domain.ProductID) {
	if len(ids) == 0 {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.hydrate(ctx, ids)
	}()
}

// hydrate resolves a batch of product identifiers concurrently. Each fetch
// is independent: a failure is logged and skipped without aborting its
// siblings. Successful results merge into the cache as one update.
func (s *Store) hydrate(ctx context.Context, ids []domain.ProductID) {
	ctx, span := s.tracer.Start(ctx, "Hydrating products",
		ports.WithAttribute("products", len(ids)))
	defer span.End()

	var mu sync.Mutex
	resolved := make(map[domain.ProductID]domain.Product, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			product, err := s.lookup.GetByID(ctx, id)
			if err != nil {
				span.RecordError(err)
				s.logger.Error(zerr.With(zerr.Wrap(err, "failed to hydrate product"), "product", id.String()))
				return nil
			}
			if product == nil {
				s.logger.Warn("product unavailable: " + id.String())
				return nil
			}
			mu.Lock()
			resolved[id] = *product
			mu.Unlock()
			return nil
		})
	}
	// Fetch closures always return nil; failures are isolated per product.
	_ = g.Wait()

	s.mu.Lock()
	for id, product := range resolved {
		s.cache[id] = product
	}
	for _, id := range ids {
		delete(s.inflight, id)
	}
	s.mu.Unlock()

	if len(resolved) > 0 {
		span.SetAttribute("resolved", len(resolved))
		s.signal()
	}
}

// persist writes the snapshot when the debounce window fires. A write
// failure is logged; the in-memory cart remains authoritative.
func (s *Store) persist(lines []domain.CartLine) {
	if err := s.snapshots.Save(context.Background(), s.profile, lines); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to persist cart snapshot"))
	}
}

// signal notifies change listeners without ever blocking.
func (s *Store) signal() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
