// Package config loads viewer configuration from a TOML file with
// environment variable overrides, and watches the file for runtime
// keybinding changes.
package config

import (
	"fmt"
	"os"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/folio/internal/doc"
)

// Config is the full viewer configuration.
type Config struct {
	Viewer  Viewer            `toml:"viewer"`
	Logging Logging           `toml:"logging"`
	Remap   map[string]string `toml:"remap"`
	Script  Script            `toml:"script"`
}

// Viewer configures layout and selection defaults.
type Viewer struct {
	// PagesPerRow is the initial grid column count.
	PagesPerRow uint32 `toml:"pagesPerRow"`

	// PageSpacing is the gap between pages, in unscaled units.
	PageSpacing float64 `toml:"pageSpacing"`

	// HighlightColor is the saved-highlight color as a hex string.
	HighlightColor string `toml:"highlightColor"`
}

// Logging configures the session logger.
type Logging struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string `toml:"level"`

	// File is the log destination; empty logs to stderr.
	File string `toml:"file"`
}

// Script configures the optional Lua rc script.
type Script struct {
	// Path to the rc script; empty disables scripting.
	Path string `toml:"path"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Viewer: Viewer{
			PagesPerRow:    1,
			PageSpacing:    10,
			HighlightColor: "#ffff00",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the config file at path, falling back to defaults when
// the file does not exist, then applies environment overrides. A file
// that exists but fails to parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file is not an error.
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	if cfg.Viewer.PagesPerRow < 1 {
		cfg.Viewer.PagesPerRow = 1
	}
	return cfg, nil
}

// applyEnv overlays FOLIO_* environment variables onto the config.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("FOLIO_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv("FOLIO_LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := os.LookupEnv("FOLIO_PAGES_PER_ROW"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			cfg.Viewer.PagesPerRow = uint32(n)
		}
	}
	if v, ok := os.LookupEnv("FOLIO_SCRIPT"); ok {
		cfg.Script.Path = v
	}
}

// HighlightColor parses the configured highlight color. An unparseable
// value falls back to the default yellow.
func (c Config) HighlightColor() doc.Color {
	col, err := colorful.Hex(c.Viewer.HighlightColor)
	if err != nil {
		col, _ = colorful.Hex(Default().Viewer.HighlightColor)
	}
	return doc.Color{R: col.R, G: col.G, B: col.B}
}
