// Package config loads gridwords settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/gridwords/config.toml (falling back to
// ~/.config/gridwords/config.toml). Every key is optional; missing keys keep
// their [Default] values and command-line flags override both.
//
//	dictionary = "https://www.mit.edu/~ecprice/wordlist.10000"
//	workers    = 8
//	timeout    = "30s"
//	cache_ttl  = "168h"
//	redis_addr = "localhost:6379"
//	listen     = ":8080"
//	letters    = "abcdefghijklmnopqrstuvwxyz"
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridwords/pkg/dictionary"
	errs "github.com/matzehuels/gridwords/pkg/errors"
	"github.com/matzehuels/gridwords/pkg/grid"
)

const appName = "gridwords"

// Config holds user settings.
type Config struct {
	Dictionary string        `toml:"dictionary"` // file path, "-" or URL
	Workers    int           `toml:"workers"`    // 0 = GOMAXPROCS
	Timeout    time.Duration `toml:"timeout"`    // per solve; 0 = none
	CacheDir   string        `toml:"cache_dir"`
	CacheTTL   time.Duration `toml:"cache_ttl"`
	RedisAddr  string        `toml:"redis_addr"` // empty = file cache
	Listen     string        `toml:"listen"`
	Letters    string        `toml:"letters"` // pool for generated grids
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dictionary: dictionary.DefaultURL,
		Timeout:    time.Minute,
		CacheDir:   defaultCacheDir(),
		CacheTTL:   7 * 24 * time.Hour,
		Listen:     ":8080",
		Letters:    grid.DefaultLetters,
	}
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, "config.toml")
}

// Load reads the file at path over the defaults. An empty path selects
// Path(); a missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s not found", path)
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidPath, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return errs.New(errs.ErrCodeInvalidInput, "workers must be >= 0, got %d", c.Workers)
	case c.Timeout < 0:
		return errs.New(errs.ErrCodeInvalidInput, "timeout must be >= 0, got %s", c.Timeout)
	case c.CacheTTL < 0:
		return errs.New(errs.ErrCodeInvalidInput, "cache_ttl must be >= 0, got %s", c.CacheTTL)
	case c.Dictionary == "":
		return errs.New(errs.ErrCodeInvalidInput, "dictionary cannot be empty")
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".cache", appName)
}
