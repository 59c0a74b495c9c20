// Package config loads ecbingo settings.
//
// Settings are layered: built-in defaults, then the TOML file, then
// ECBINGO_* environment variables. A missing default config file is fine; a
// file named explicitly with --config must exist. Unknown keys in the file
// are rejected so typos do not silently fall back to defaults.
//
//	catalog_url  = "https://ec.emote.bot/api/v0"
//	cache_ttl    = "12h"
//	redis_url    = "redis://localhost:6379/0"
//	base_image   = "/usr/share/ecbingo/bingo_board_base.png"
//	font         = "/usr/share/fonts/TTF/DejaVuSans.ttf"
//	wrap_width   = 12
//	text_color   = "#1a1a1a"
//
//	[catalog_headers]
//	Authorization = "Bearer ..."
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ecbingo/ecbingo/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ECBINGO_"

// Config holds every tunable setting.
type Config struct {
	CatalogURL  string        `toml:"catalog_url" env:"CATALOG_URL"`
	CacheDir    string        `toml:"cache_dir" env:"CACHE_DIR"`
	CacheTTL    time.Duration `toml:"cache_ttl" env:"CACHE_TTL"`
	RedisURL    string        `toml:"redis_url" env:"REDIS_URL"`
	HTTPTimeout time.Duration `toml:"http_timeout" env:"HTTP_TIMEOUT"`
	BaseImage   string        `toml:"base_image" env:"BASE_IMAGE"`
	Font        string        `toml:"font" env:"FONT"`
	FontSize    float64       `toml:"font_size" env:"FONT_SIZE"`
	WrapWidth   int           `toml:"wrap_width" env:"WRAP_WIDTH"`
	TextColor   string        `toml:"text_color" env:"TEXT_COLOR"`
	Categories  string        `toml:"categories" env:"CATEGORIES"`
	Listen      string        `toml:"listen" env:"LISTEN"`

	// CatalogHeaders are sent with every catalog request. From the
	// environment: ECBINGO_CATALOG_HEADERS="Authorization:Bearer x,X-Client:y".
	CatalogHeaders map[string]string `toml:"catalog_headers" env:"CATALOG_HEADERS"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CatalogURL:  "https://ec.emote.bot/api/v0",
		CacheDir:    filepath.Join(xdgDir("XDG_CACHE_HOME", ".cache"), "ecbingo"),
		CacheTTL:    24 * time.Hour,
		HTTPTimeout: 10 * time.Second,
		FontSize:    40,
		WrapWidth:   10,
		TextColor:   "#000000",
		Listen:      ":8080",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ecbingo/config.toml, falling back to
// ~/.config/ecbingo/config.toml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "ecbingo", "config.toml")
}

// Load reads the config file at path (or [DefaultPath] when path is empty)
// and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.decodeFile(path, explicit); err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string, required bool) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks value ranges and that configured asset files exist.
func (c *Config) Validate() error {
	switch {
	case c.CatalogURL == "":
		return errors.New(errors.ErrCodeInvalidInput, "catalog_url is empty")
	case c.CacheTTL < 0:
		return errors.New(errors.ErrCodeInvalidInput, "cache_ttl must not be negative")
	case c.HTTPTimeout <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "http_timeout must be positive")
	case c.FontSize <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "font_size must be positive")
	case c.WrapWidth < 1:
		return errors.New(errors.ErrCodeInvalidInput, "wrap_width must be at least 1")
	}
	if _, err := c.Ink(); err != nil {
		return err
	}
	files := []struct{ key, path string }{
		{"base_image", c.BaseImage},
		{"font", c.Font},
		{"categories", c.Categories},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", f.key)
		}
	}
	return nil
}

// Ink parses TextColor, a "#rrggbb" or "#rgb" hex color.
func (c *Config) Ink() (color.Color, error) {
	ink, err := colorful.Hex(c.TextColor)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "text_color %q", c.TextColor)
	}
	return ink, nil
}

// String renders the effective settings as TOML.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return sb.String()
}

func xdgDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), fallback)
	}
	return filepath.Join(home, fallback)
}
