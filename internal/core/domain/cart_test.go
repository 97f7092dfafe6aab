package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shopfront/internal/core/domain"
)

func TestVariant_Canonical(t *testing.T) {
	tests := []struct {
		name    string
		variant domain.Variant
		want    string
	}{
		{
			name:    "nil variant",
			variant: nil,
			want:    "",
		},
		{
			name:    "empty variant",
			variant: domain.Variant{},
			want:    "",
		},
		{
			name:    "single field",
			variant: domain.Variant{"size": "L"},
			want:    "size=L",
		},
		{
			name:    "fields sorted by key",
			variant: domain.Variant{"size": "L", "pack": "6", "color": "red"},
			want:    "color=red;pack=6;size=L",
		},
		{
			name:    "delimiters in value are escaped",
			variant: domain.Variant{"pack": "6;size=L"},
			want:    `pack=6\;size\=L`,
		},
		{
			name:    "delimiters in key are escaped",
			variant: domain.Variant{`a=b;c`: "d", `e\f`: "g"},
			want:    `a\=b\;c=d;e\\f=g`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.variant.Canonical())
		})
	}
}

func TestNewLineKey_FieldOrderIndependent(t *testing.T) {
	// Two maps with identical content must always produce the same key,
	// regardless of how they were constructed.
	a := domain.Variant{}
	a["size"] = "M"
	a["pack"] = "2"

	b := domain.Variant{}
	b["pack"] = "2"
	b["size"] = "M"

	assert.Equal(t, domain.NewLineKey("p1", a), domain.NewLineKey("p1", b))
	assert.NotEqual(t, domain.NewLineKey("p1", a), domain.NewLineKey("p2", a))
}

func TestLedger_AddLine_MergesByIdentity(t *testing.T) {
	l := domain.NewLedger()

	require.True(t, l.AddLine("p1", nil, 2, 12000))
	require.True(t, l.AddLine("p1", nil, 3, 99900))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	// Unit price is first-write-wins.
	assert.Equal(t, int64(12000), lines[0].UnitPriceCents)
	assert.Equal(t, int64(60000), l.TotalPriceCents())
}

func TestVariant_Canonical_DelimiterValuesStayDistinct(t *testing.T) {
	// A value containing the serialization delimiters must never read as
	// structure: these two selections are different products in the cart.
	nested := domain.Variant{"pack": "6;size=L"}
	split := domain.Variant{"pack": "6", "size": "L"}

	assert.NotEqual(t, nested.Canonical(), split.Canonical())
	assert.NotEqual(t, domain.NewLineKey("p1", nested), domain.NewLineKey("p1", split))

	l := domain.NewLedger()
	require.True(t, l.AddLine("p1", nested, 1, 100))
	require.True(t, l.AddLine("p1", split, 1, 100))
	assert.Equal(t, 2, l.Len())
}

func TestLedger_AddLine_DistinctVariantsAreDistinctLines(t *testing.T) {
	l := domain.NewLedger()

	require.True(t, l.AddLine("p2", domain.Variant{"size": "L"}, 1, 1990))
	require.True(t, l.AddLine("p2", domain.Variant{"size": "M"}, 1, 1990))

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("p2", domain.Variant{"size": "L"}))
	assert.True(t, l.Contains("p2", domain.Variant{"size": "M"}))
}

func TestLedger_AddLine_NonPositiveQuantityIsNoOp(t *testing.T) {
	l := domain.NewLedger()

	assert.False(t, l.AddLine("p1", nil, 0, 1000))
	assert.False(t, l.AddLine("p1", nil, -3, 1000))
	assert.True(t, l.IsEmpty())
}

func TestLedger_AddLine_PreservesInsertionOrder(t *testing.T) {
	l := domain.NewLedger()

	l.AddLine("p3", nil, 1, 100)
	l.AddLine("p1", nil, 1, 100)
	l.AddLine("p2", nil, 1, 100)
	// Merging into an existing line must not reorder it.
	l.AddLine("p1", nil, 1, 100)

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, domain.ProductID("p3"), lines[0].ProductID)
	assert.Equal(t, domain.ProductID("p1"), lines[1].ProductID)
	assert.Equal(t, domain.ProductID("p2"), lines[2].ProductID)
}

func TestLedger_RemoveLine(t *testing.T) {
	l := domain.NewLedger()
	l.AddLine("p1", nil, 1, 100)
	l.AddLine("p2", domain.Variant{"size": "L"}, 2, 200)
	l.AddLine("p3", nil, 3, 300)

	require.True(t, l.RemoveLine("p2", domain.Variant{"size": "L"}))
	assert.False(t, l.Contains("p2", domain.Variant{"size": "L"}))

	// Remaining lines keep their order and stay addressable by key.
	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, domain.ProductID("p1"), lines[0].ProductID)
	assert.Equal(t, domain.ProductID("p3"), lines[1].ProductID)
	require.True(t, l.RemoveLine("p3", nil))

	// Removing an absent key is a no-op.
	assert.False(t, l.RemoveLine("p2", domain.Variant{"size": "L"}))
}

func TestLedger_SetQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantChanged  bool
		wantContains bool
		wantQuantity int
	}{
		{
			name:         "overwrite quantity",
			quantity:     7,
			wantChanged:  true,
			wantContains: true,
			wantQuantity: 7,
		},
		{
			name:         "same quantity is a no-op",
			quantity:     2,
			wantChanged:  false,
			wantContains: true,
			wantQuantity: 2,
		},
		{
			name:         "zero removes the line",
			quantity:     0,
			wantChanged:  true,
			wantContains: false,
		},
		{
			name:         "negative removes the line",
			quantity:     -5,
			wantChanged:  true,
			wantContains: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.NewLedger()
			l.AddLine("p1", nil, 2, 5000)

			assert.Equal(t, tt.wantChanged, l.SetQuantity("p1", nil, tt.quantity))
			assert.Equal(t, tt.wantContains, l.Contains("p1", nil))
			if tt.wantContains {
				assert.Equal(t, tt.wantQuantity, l.Lines()[0].Quantity)
			}
		})
	}
}

func TestLedger_SetQuantity_UnknownKeyDoesNotCreate(t *testing.T) {
	l := domain.NewLedger()

	assert.False(t, l.SetQuantity("ghost", nil, 4))
	assert.True(t, l.IsEmpty())
}

func TestLedger_Totals(t *testing.T) {
	l := domain.NewLedger()
	l.AddLine("p1", nil, 2, 12000)
	l.AddLine("p2", domain.Variant{"size": "L"}, 3, 1990)
	l.AddLine("p2", domain.Variant{"size": "M"}, 1, 2490)

	assert.Equal(t, 6, l.TotalItems())

	// Totals always equal the sum over the visible lines.
	var wantItems int
	var wantPrice int64
	for _, line := range l.Lines() {
		wantItems += line.Quantity
		wantPrice += line.UnitPriceCents * int64(line.Quantity)
	}
	assert.Equal(t, wantItems, l.TotalItems())
	assert.Equal(t, wantPrice, l.TotalPriceCents())
}

func TestLedger_Clear(t *testing.T) {
	l := domain.NewLedger()
	l.AddLine("p1", nil, 2, 100)

	require.True(t, l.Clear())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.TotalItems())
	assert.Equal(t, int64(0), l.TotalPriceCents())

	// Clearing an empty ledger reports no change.
	assert.False(t, l.Clear())
}

func TestLedgerFromLines_SanitizesSnapshot(t *testing.T) {
	// A snapshot may have been hand-edited: non-positive quantities are
	// dropped and duplicate keys merged.
	l := domain.LedgerFromLines([]domain.CartLine{
		{ProductID: "p1", Quantity: 2, UnitPriceCents: 100},
		{ProductID: "p2", Quantity: 0, UnitPriceCents: 200},
		{ProductID: "p1", Quantity: 3, UnitPriceCents: 999},
		{ProductID: "p3", Quantity: -1, UnitPriceCents: 300},
	})

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, domain.ProductID("p1"), lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, int64(100), lines[0].UnitPriceCents)
}

func TestLedger_DistinctProductIDs(t *testing.T) {
	l := domain.NewLedger()
	l.AddLine("p2", domain.Variant{"size": "L"}, 1, 100)
	l.AddLine("p1", nil, 1, 100)
	l.AddLine("p2", domain.Variant{"size": "M"}, 1, 100)

	assert.Equal(t, []domain.ProductID{"p2", "p1"}, l.DistinctProductIDs())
}

func TestLedger_Lines_IsACopy(t *testing.T) {
	l := domain.NewLedger()
	l.AddLine("p1", domain.Variant{"size": "L"}, 1, 100)

	lines := l.Lines()
	lines[0].Quantity = 99
	lines[0].Variant["size"] = "XXL"

	got := l.Lines()
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, "L", got[0].Variant["size"])
}
