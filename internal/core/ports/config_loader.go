package ports

import "go.trai.ch/shopfront/internal/core/domain"

// ConfigLoader loads the storefront configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory, walking up to find shopfront.yaml. When no file exists
	// the built-in defaults are returned.
	Load(cwd string) (*domain.Settings, error)
}
