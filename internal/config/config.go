// Package config loads the global pdbctl configuration from the XDG config
// directory.
package config

import (
	"os"
	"path/filepath"

	"pdbctl/internal/constants"
	"pdbctl/internal/errors"
	"pdbctl/internal/xdg"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the global pdbctl configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Resolver ResolverConfig `toml:"resolver"`
}

type ServerConfig struct {
	Host string `toml:"host"` // Bind address (default localhost)
	Port int    `toml:"port"` // Server port (default 8421)
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

type ResolverConfig struct {
	// ExtraMarkers are project-root marker names probed in addition to the
	// built-in set (pyproject.toml, .git, setup.py, requirements.txt).
	ExtraMarkers []string `toml:"extra_markers"`

	// ExtraVenvNames are venv directory names probed after .venv and venv.
	ExtraVenvNames []string `toml:"extra_venv_names"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: constants.DefaultServerHost,
			Port: constants.DefaultServerPort,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads the configuration from the XDG config directory. A missing
// config file is not an error; defaults are returned.
func Load() (*Config, error) {
	configDir, err := xdg.ConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from an explicit file path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrFileRead, "Failed to read configuration file", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigParseError(err)
	}

	// Apply defaults for any missing values
	defaults := Default()
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaults.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.ConfigInvalid("server.port must be between 1 and 65535")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.ConfigInvalid("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.ConfigInvalid("log.format must be text or json")
	}
	return nil
}
