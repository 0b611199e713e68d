package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"FreehandBoard/internal/input"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/tool"
)

const appDir = "freehandboard"

type Config struct {
	Defaults Defaults `toml:"defaults"`
	Drawing  Drawing  `toml:"drawing"`
	Window   Window   `toml:"window"`
	Export   Export   `toml:"export"`
}

type Defaults struct {
	Mode  string  `toml:"mode"`
	Color string  `toml:"color"`
	Width float32 `toml:"width"`
}

type Drawing struct {
	SimplifyTolerance float64 `toml:"simplify_tolerance"`
	HitTolerance      float32 `toml:"hit_tolerance"`
	CornerRadius      float32 `toml:"corner_radius"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Export struct {
	Directory string  `toml:"directory"`
	PNGMargin float64 `toml:"png_margin"`
}

func Default() *Config {
	opts := input.DefaultOptions()
	return &Config{
		Defaults: Defaults{Mode: tool.ModeDraw.String(), Color: tool.DefaultColor, Width: tool.DefaultWidth},
		Drawing: Drawing{
			SimplifyTolerance: opts.SimplifyTolerance,
			HitTolerance:      opts.HitTolerance,
			CornerRadius:      opts.CornerRadius,
		},
		Window: Window{Width: 1024, Height: 768},
		Export: Export{PNGMargin: 20},
	}
}

// DefaultPath is config.toml under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, "config.toml")
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[CONFIG] No config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.Normalize()
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// Normalize resets out-of-range values to their defaults.
func (c *Config) Normalize() {
	def := Default()
	if _, ok := tool.ParseMode(c.Defaults.Mode); !ok {
		c.Defaults.Mode = def.Defaults.Mode
	}
	if _, err := state.ParseColor(c.Defaults.Color); err != nil {
		c.Defaults.Color = def.Defaults.Color
	}
	if c.Defaults.Width < 1 {
		c.Defaults.Width = def.Defaults.Width
	}
	if c.Drawing.SimplifyTolerance <= 0 {
		c.Drawing.SimplifyTolerance = def.Drawing.SimplifyTolerance
	}
	if c.Drawing.HitTolerance <= 0 {
		c.Drawing.HitTolerance = def.Drawing.HitTolerance
	}
	if c.Drawing.CornerRadius < 0 {
		c.Drawing.CornerRadius = def.Drawing.CornerRadius
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = def.Window
	}
	if c.Export.PNGMargin < 0 {
		c.Export.PNGMargin = def.Export.PNGMargin
	}
}

// ToolDefaults converts the [defaults] table for the tool controller.
func (c *Config) ToolDefaults() tool.Defaults {
	mode, _ := tool.ParseMode(c.Defaults.Mode)
	return tool.Defaults{Mode: mode, Color: c.Defaults.Color, Width: c.Defaults.Width}
}

func (c *Config) InputOptions() input.Options {
	return input.Options{
		HitTolerance:      c.Drawing.HitTolerance,
		SimplifyTolerance: c.Drawing.SimplifyTolerance,
		CornerRadius:      c.Drawing.CornerRadius,
	}
}

// ExportPath joins name onto the export directory, creating it if needed.
func (c *Config) ExportPath(name string) string {
	if c.Export.Directory == "" {
		return name
	}
	if err := os.MkdirAll(c.Export.Directory, 0o755); err != nil {
		log.Printf("[CONFIG] Cannot create export directory: %v", err)
		return name
	}
	return filepath.Join(c.Export.Directory, name)
}
