// Package config loads CLI configuration for cleardef.
//
// Configuration lives in a TOML file at
// $XDG_CONFIG_HOME/cleardef/config.toml (falling back to
// ~/.config/cleardef/config.toml). Every field has a working default, so a
// missing file is not an error; pointing Root at a local mock server is the
// main reason the file exists.
//
// Example:
//
//	root = "http://localhost:8734"
//	chunk_size = 250
//	parallel = 8
//	timeout_seconds = 30
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cleardef/pkg/definitions"
)

// appName is the application name used for config directories.
const appName = "cleardef"

// Config holds the CLI-level settings for the definitions client.
type Config struct {
	// Root is the service root URI.
	Root string `toml:"root"`

	// ChunkSize is the number of coordinates per request. The service caps
	// requests at 1000 coordinates; larger values are clamped at send time.
	ChunkSize int `toml:"chunk_size"`

	// Parallel bounds the number of in-flight requests.
	Parallel int `toml:"parallel"`

	// TimeoutSeconds bounds a single request round trip.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns the built-in configuration: production root, 500
// coordinates per request, 4 parallel requests, 60 second timeout.
func Default() Config {
	return Config{
		Root:           definitions.DefaultRoot,
		ChunkSize:      500,
		Parallel:       4,
		TimeoutSeconds: 60,
	}
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Path returns the config file location using the XDG convention
// (~/.config/cleardef/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, layering it over Default. An empty
// path means the XDG location; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
