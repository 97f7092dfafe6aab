package domain

import "time"

// DefaultDebounceWindow is the delay applied to cart persistence writes so
// bursts of mutations collapse into a single snapshot write.
const DefaultDebounceWindow = 100 * time.Millisecond

// Settings is the resolved storefront configuration.
type Settings struct {
	// CatalogPath is the path to the catalog fixture file.
	CatalogPath string

	// CartDir is the directory holding cart snapshots.
	CartDir string

	// CartProfile is the snapshot key for this cart.
	CartProfile string

	// Currency is the display currency code for prices.
	Currency string

	// DebounceWindow is the persistence debounce delay.
	DebounceWindow time.Duration
}

// DefaultSettings returns the built-in configuration used when no
// shopfront.yaml is present.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPath:    "catalog.yaml",
		CartDir:        DefaultCartPath(),
		CartProfile:    DefaultCartProfile,
		Currency:       "USD",
		DebounceWindow: DefaultDebounceWindow,
	}
}
