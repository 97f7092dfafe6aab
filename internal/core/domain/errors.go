package domain

import "go.trai.ch/zerr"

var (
	// ErrProductNotFound is returned when a product identifier does not exist in the catalog.
	ErrProductNotFound = zerr.New("product not found")

	// ErrInvalidQuantity is returned when a command supplies a quantity below one.
	ErrInvalidQuantity = zerr.New("quantity must be a positive integer")

	// ErrInvalidVariant is returned when a variant selector cannot be parsed.
	ErrInvalidVariant = zerr.New("invalid variant selector, expected key=value")

	// ErrSnapshotReadFailed is returned when the cart snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read cart snapshot")

	// ErrSnapshotDecodeFailed is returned when the cart snapshot cannot be decoded.
	ErrSnapshotDecodeFailed = zerr.New("failed to decode cart snapshot")

	// ErrSnapshotEncodeFailed is returned when the cart snapshot cannot be encoded.
	ErrSnapshotEncodeFailed = zerr.New("failed to encode cart snapshot")

	// ErrSnapshotWriteFailed is returned when the cart snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write cart snapshot")

	// ErrStoreCreateFailed is returned when the cart store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cart store directory")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read.
	ErrCatalogReadFailed = zerr.New("failed to read catalog file")

	// ErrCatalogParseFailed is returned when the catalog file cannot be parsed.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog file")

	// ErrCatalogWatchFailed is returned when the catalog file watcher cannot be started.
	ErrCatalogWatchFailed = zerr.New("failed to watch catalog file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no shopfront.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find shopfront.yaml")

	// ErrCartEmpty is returned when checkout is requested on an empty cart.
	ErrCartEmpty = zerr.New("cart is empty")
)
