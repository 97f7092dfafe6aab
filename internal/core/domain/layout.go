package domain

import "path/filepath"

const (
	// ShopDirName is the name of the internal shopfront state directory.
	ShopDirName = ".shopfront"

	// CartDirName is the name of the cart snapshot directory.
	CartDirName = "cart"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "shopfront.yaml"

	// DefaultCartProfile is the snapshot key used when no profile is configured.
	DefaultCartProfile = "default"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultShopPath returns the default root directory for shopfront state.
func DefaultShopPath() string {
	return ShopDirName
}

// DefaultCartPath returns the default directory for cart snapshots.
// It joins .shopfront and cart.
func DefaultCartPath() string {
	return filepath.Join(ShopDirName, CartDirName)
}
