// Package config provides the configuration loader for shopfront.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.trai.ch/shopfront/internal/core/domain"
	"go.trai.ch/shopfront/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validCurrencyRegex = regexp.MustCompile("^[A-Z]{3}$")

// Load resolves the storefront settings for the given working directory.
// The loader walks up the directory tree looking for shopfront.yaml; when
// no file is found the built-in defaults apply. Relative paths in the file
// are resolved against the directory containing it.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		return l.resolve(cwd, &Shopfile{}), nil
	}

	// #nosec G304 -- configPath is discovered by walking up from cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var shopfile Shopfile
	if err := yaml.Unmarshal(data, &shopfile); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return l.resolve(filepath.Dir(configPath), &shopfile), nil
}

// findConfiguration walks up from cwd looking for shopfront.yaml.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", false
}

// resolve fills in defaults for absent fields and warns about values that
// cannot be honored. A partially invalid file still yields usable settings.
func (l *Loader) resolve(configDir string, shopfile *Shopfile) *domain.Settings {
	settings := domain.DefaultSettings()

	if shopfile.Catalog != "" {
		settings.CatalogPath = resolvePath(configDir, shopfile.Catalog)
	} else {
		settings.CatalogPath = resolvePath(configDir, settings.CatalogPath)
	}

	if shopfile.Cart.Dir != "" {
		settings.CartDir = resolvePath(configDir, shopfile.Cart.Dir)
	} else {
		settings.CartDir = resolvePath(configDir, settings.CartDir)
	}

	if shopfile.Cart.Profile != "" {
		settings.CartProfile = shopfile.Cart.Profile
	}

	if shopfile.Currency != "" {
		if validCurrencyRegex.MatchString(shopfile.Currency) {
			settings.Currency = shopfile.Currency
		} else {
			l.Logger.Warn(fmt.Sprintf("invalid currency %q in %s, using %s",
				shopfile.Currency, domain.ConfigFileName, settings.Currency))
		}
	}

	if shopfile.DebounceMS > 0 {
		settings.DebounceWindow = time.Duration(shopfile.DebounceMS) * time.Millisecond
	} else if shopfile.DebounceMS < 0 {
		l.Logger.Warn(fmt.Sprintf("negative debounce_ms in %s, using %s",
			domain.ConfigFileName, settings.DebounceWindow))
	}

	return settings
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
