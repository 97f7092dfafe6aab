// Package domain contains the core domain types for the shopfront cart.
package domain

import (
	"slices"
	"strings"
)

// Variant is an optional structured selector for a purchasable product
// (e.g. size or pack). A nil or empty Variant means the default selection.
type Variant map[string]string

// canonEscaper escapes the serialization delimiters inside keys and
// values. Without it `{"pack": "6;size=L"}` and `{"pack": "6", "size": "L"}`
// would serialize identically and two distinct selections would merge into
// one cart line.
var canonEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `=`, `\=`)

// Canonical returns the canonical serialization of the variant with keys
// sorted, so the result is independent of map iteration or insertion order.
// Delimiter characters in keys and values are escaped, making the
// serialization injective. The empty string is returned for the default
// (nil or empty) variant.
func (v Variant) Canonical() string {
	if len(v) == 0 {
		return ""
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(canonEscaper.Replace(k))
		b.WriteByte('=')
		b.WriteString(canonEscaper.Replace(v[k]))
	}
	return b.String()
}

// Clone returns an independent copy of the variant.
func (v Variant) Clone() Variant {
	if v == nil {
		return nil
	}
	out := make(Variant, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// LineKey uniquely identifies a cart line as the pair of product identifier
// and canonical variant serialization.
type LineKey string

// NewLineKey builds the identity key for a product and variant.
func NewLineKey(id ProductID, variant Variant) LineKey {
	return LineKey(string(id) + "|" + variant.Canonical())
}

// CartLine is one purchasable selection in the cart.
//
// UnitPriceCents is snapshotted when the line is first added and is never
// re-derived from the catalog.
type CartLine struct {
	ProductID      ProductID `json:"productId"`
	Variant        Variant   `json:"variant,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

// Key returns the identity key of the line.
func (l CartLine) Key() LineKey {
	return NewLineKey(l.ProductID, l.Variant)
}

// SubtotalCents returns the line subtotal in cents.
func (l CartLine) SubtotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Ledger is the insertion-ordered, deduplicated collection of cart lines.
//
// Invariants: no two lines share an identity key, and no line has a
// quantity below one. The Ledger is not safe for concurrent use; callers
// serialize access (the cart store owns it behind a mutex).
type Ledger struct {
	lines []CartLine
	index map[LineKey]int
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[LineKey]int)}
}

// LedgerFromLines rebuilds a Ledger from a persisted snapshot. Lines with a
// non-positive quantity are dropped and duplicate keys are merged into the
// first occurrence, so a hand-edited or stale snapshot cannot violate the
// ledger invariants.
func LedgerFromLines(lines []CartLine) *Ledger {
	l := NewLedger()
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		if i, ok := l.index[line.Key()]; ok {
			l.lines[i].Quantity += line.Quantity
			continue
		}
		l.append(line)
	}
	return l
}

func (l *Ledger) append(line CartLine) {
	line.Variant = line.Variant.Clone()
	l.index[line.Key()] = len(l.lines)
	l.lines = append(l.lines, line)
}

// AddLine merges the given selection into the ledger. If a line with the
// same identity key exists its quantity is incremented and its unit price
// left unchanged (first write wins); otherwise a new line is appended.
// A non-positive quantity is a no-op; callers wanting removal use RemoveLine.
// It reports whether the ledger changed.
func (l *Ledger) AddLine(id ProductID, variant Variant, quantity int, unitPriceCents int64) bool {
	if quantity <= 0 {
		return false
	}

	key := NewLineKey(id, variant)
	if i, ok := l.index[key]; ok {
		l.lines[i].Quantity += quantity
		return true
	}

	l.append(CartLine{
		ProductID:      id,
		Variant:        variant,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
	})
	return true
}

// RemoveLine deletes the line matching the identity key. It reports whether
// a line was removed; removing an absent line is a no-op.
func (l *Ledger) RemoveLine(id ProductID, variant Variant) bool {
	key := NewLineKey(id, variant)
	i, ok := l.index[key]
	if !ok {
		return false
	}

	l.lines = append(l.lines[:i], l.lines[i+1:]...)
	delete(l.index, key)
	for j := i; j < len(l.lines); j++ {
		l.index[l.lines[j].Key()] = j
	}
	return true
}

// SetQuantity overwrites the quantity of the matching line. A quantity of
// zero or less behaves as RemoveLine. Setting the quantity of an absent key
// is a no-op: the unit price is unknown, so no line is created.
func (l *Ledger) SetQuantity(id ProductID, variant Variant, quantity int) bool {
	if quantity <= 0 {
		return l.RemoveLine(id, variant)
	}

	i, ok := l.index[NewLineKey(id, variant)]
	if !ok {
		return false
	}
	if l.lines[i].Quantity == quantity {
		return false
	}
	l.lines[i].Quantity = quantity
	return true
}

// Clear empties the ledger. It reports whether any lines were removed.
func (l *Ledger) Clear() bool {
	if len(l.lines) == 0 {
		return false
	}
	l.lines = nil
	l.index = make(map[LineKey]int)
	return true
}

// Contains reports whether a line with the given identity key exists.
func (l *Ledger) Contains(id ProductID, variant Variant) bool {
	_, ok := l.index[NewLineKey(id, variant)]
	return ok
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// IsEmpty reports whether the ledger holds no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// TotalItems returns the sum of quantities over all lines.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// TotalPriceCents returns the sum of line subtotals in cents.
func (l *Ledger) TotalPriceCents() int64 {
	var total int64
	for _, line := range l.lines {
		total += line.SubtotalCents()
	}
	return total
}

// Lines returns a copy of the ordered line sequence.
func (l *Ledger) Lines() []CartLine {
	out := make([]CartLine, len(l.lines))
	copy(out, l.lines)
	for i := range out {
		out[i].Variant = out[i].Variant.Clone()
	}
	return out
}

// DistinctProductIDs returns the set of product identifiers referenced by
// the ledger, in first-reference order.
func (l *Ledger) DistinctProductIDs() []ProductID {
	seen := make(map[ProductID]struct{}, len(l.lines))
	ids := make([]ProductID, 0, len(l.lines))
	for _, line := range l.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}
