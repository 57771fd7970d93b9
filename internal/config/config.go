package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional repository-local configuration, read from
// maintainers.toml at the repository root.
type Config struct {
	// Ignore lists glob patterns for diff entries that never count towards
	// team matching (generated files, translation catalogs, ...).
	Ignore []string `toml:"ignore"`

	// Security maps module paths to the versions the security manifest
	// should target instead of the currently required ones.
	Security map[string]string `toml:"security"`
}

func defaultConfig() *Config {
	return &Config{
		Ignore:   []string{},
		Security: map[string]string{},
	}
}

// Read loads maintainers.toml from dir. A missing file yields the default
// config with no error; an unreadable or malformed file yields the default
// config plus the error so callers can warn and carry on.
func Read(dir string) (*Config, error) {
	fileName := filepath.Join(dir, "maintainers.toml")
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig(), err
	}
	config := defaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return defaultConfig(), err
	}
	return config, nil
}
