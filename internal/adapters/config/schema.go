package config

// Shopfile represents the structure of the shopfront.yaml configuration file.
type Shopfile struct {
	Version    string  `yaml:"version"`
	Catalog    string  `yaml:"catalog"`
	Cart       CartDTO `yaml:"cart"`
	Currency   string  `yaml:"currency"`
	DebounceMS int     `yaml:"debounce_ms"`
}

// CartDTO represents the cart persistence section of the configuration.
type CartDTO struct {
	Dir     string `yaml:"dir"`
	Profile string `yaml:"profile"`
}
