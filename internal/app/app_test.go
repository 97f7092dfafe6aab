package app_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shopfront/internal/app"
	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/shopfront/internal/core/ports/mocks"
	"go.trai.ch/shopfront/internal/engine/cartstore"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	snapshots *mocks.MockSnapshotStore
	lookup    *mocks.MockProductLookup
	logger    *mocks.MockLogger
	notifier  *mocks.MockNotifier
	tracer    *mocks.MockTracer
	span      *mocks.MockSpan
}

func setupAppTest(t *testing.T) (*app.App, *cartstore.Store, *appMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		snapshots: mocks.NewMockSnapshotStore(ctrl),
		lookup:    mocks.NewMockProductLookup(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		span:      mocks.NewMockSpan(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	m.notifier.EXPECT().Notify(gomock.Any()).AnyTimes()
	m.snapshots.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	store := cartstore.NewStore(
		m.snapshots, m.lookup, m.logger, m.notifier, m.tracer,
		"default", 10*time.Millisecond,
	)

	settings := domain.DefaultSettings()
	buf := &bytes.Buffer{}
	a := app.New(store, m.lookup, m.logger, m.tracer, settings).WithOutput(buf)
	return a, store, m, buf
}

func beanie() *domain.Product {
	return &domain.Product{
		ID:         "sku-001",
		Title:      "Wool Beanie",
		PriceCents: 2500,
		Currency:   "USD",
	}
}

func TestApp_Browse(t *testing.T) {
	a, _, m, buf := setupAppTest(t)
	m.lookup.EXPECT().List(gomock.Any()).Return([]domain.Product{*beanie()}, nil)

	require.NoError(t, a.Browse(context.Background()))

	assert.Contains(t, buf.String(), "Wool Beanie")
	assert.Contains(t, buf.String(), "$25.00")
}

func TestApp_AddToCart_SnapshotsCatalogPrice(t *testing.T) {
	a, store, m, _ := setupAppTest(t)
	m.lookup.EXPECT().GetByID(gomock.Any(), domain.ProductID("sku-001")).
		Return(beanie(), nil).AnyTimes()

	require.NoError(t, a.AddToCart(context.Background(), "sku-001", nil, 2))
	store.WaitForHydration()

	assert.True(t, store.Contains("sku-001", nil))
	assert.Equal(t, int64(5000), store.TotalPriceCents())
}

func TestApp_AddToCart_InvalidQuantity(t *testing.T) {
	a, store, _, _ := setupAppTest(t)

	err := a.AddToCart(context.Background(), "sku-001", nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 0, store.TotalItems())
}

func TestApp_AddToCart_UnknownProduct(t *testing.T) {
	a, store, m, _ := setupAppTest(t)
	m.lookup.EXPECT().GetByID(gomock.Any(), domain.ProductID("sku-404")).
		Return(nil, domain.ErrProductNotFound)

	err := a.AddToCart(context.Background(), "sku-404", nil, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, store.TotalItems())
}

func TestApp_RemoveAndSetQuantity(t *testing.T) {
	a, store, m, _ := setupAppTest(t)
	m.lookup.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(beanie(), nil).AnyTimes()

	require.NoError(t, a.AddToCart(context.Background(), "sku-001", nil, 2))
	require.NoError(t, a.SetQuantity(context.Background(), "sku-001", nil, 5))
	assert.Equal(t, 5, store.TotalItems())

	require.NoError(t, a.RemoveFromCart(context.Background(), "sku-001", nil))
	assert.Equal(t, 0, store.TotalItems())
}

func TestApp_ShowCart_RendersResolvedTitles(t *testing.T) {
	a, _, m, buf := setupAppTest(t)
	m.lookup.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(beanie(), nil).AnyTimes()

	require.NoError(t, a.AddToCart(context.Background(), "sku-001", nil, 2))
	require.NoError(t, a.ShowCart(context.Background()))

	assert.Contains(t, buf.String(), "Wool Beanie")
	assert.Contains(t, buf.String(), "2 items, total $50.00")
}

// followableLookup is a product lookup whose backing source can be
// followed, like the file-backed catalog.
type followableLookup struct {
	ports.ProductLookup
	following bool
}

func (f *followableLookup) Watch(_ context.Context) error {
	f.following = true
	return nil
}

func TestApp_Watch_FollowsCatalog(t *testing.T) {
	_, store, m, buf := setupAppTest(t)

	follow := &followableLookup{ProductLookup: m.lookup}
	a := app.New(store, follow, m.logger, m.tracer, domain.DefaultSettings()).WithOutput(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Watch(ctx, "plain"))
	assert.True(t, follow.following)
}

func TestApp_Checkout_EmptyCart(t *testing.T) {
	a, _, _, _ := setupAppTest(t)

	err := a.Checkout(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestApp_Checkout_RendersSummaryAndClears(t *testing.T) {
	a, store, m, buf := setupAppTest(t)
	m.lookup.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(beanie(), nil).AnyTimes()

	require.NoError(t, a.AddToCart(context.Background(), "sku-001", nil, 2))
	require.NoError(t, a.Checkout(context.Background()))

	assert.Contains(t, buf.String(), "Order summary")
	assert.Contains(t, buf.String(), "checked out 2 items for $50.00")
	assert.Equal(t, 0, store.TotalItems())

	a.Close()
}
