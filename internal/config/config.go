// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the database DSN for direct
// execution comes from the environment when set.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	apperr "askdb/cli/internal/errors"
	"askdb/cli/internal/xdg"
)

// DefaultServerURL is where a locally started assistant service listens.
const DefaultServerURL = "http://127.0.0.1:8000"

// Config holds non-sensitive CLI settings.
type Config struct {
	// ServerURL is the base URL of the assistant service.
	ServerURL string `json:"server_url"`
	// RowLimit caps how many result rows are rendered per query.
	RowLimit int `json:"row_limit"`
	// DefaultDatabase remembers the last database selected with `askdb use`.
	DefaultDatabase string   `json:"default_database,omitempty"`
	LogLevel        string   `json:"log_level"`
	DB              DBConfig `json:"db"`
}

// DBConfig holds settings for direct database execution (askdb exec --local).
type DBConfig struct {
	DSN      string `json:"dsn"`
	Provided bool   `json:"provided"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, apperr.Wrap(apperr.ConfigInvalid, "parse "+p, err)
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.RowLimit <= 0 {
		c.RowLimit = 50
	}
	return c, nil
}

func defaults() Config {
	return Config{
		ServerURL: DefaultServerURL,
		RowLimit:  50,
		LogLevel:  "info",
		// No default DSN; direct execution requires env or explicit config
		DB: DBConfig{},
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
