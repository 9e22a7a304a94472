package loom

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/loomui/loom/tw"
)

// Config is the loom.toml runtime configuration.
type Config struct {
	Handlers HandlersConfig `toml:"handlers"`
	Theme    ThemeConfig    `toml:"theme"`
	Log      LogConfig      `toml:"log"`
}

// HandlersConfig bounds the handler registry.
type HandlersConfig struct {
	// Capacity is the fixed size of the handler table.
	Capacity int `toml:"capacity"`
}

// ThemeConfig overrides the named style palette.
type ThemeConfig struct {
	// Palette maps color names to hex literals, e.g. "brand-500" =
	// "#1da1f2". Entries shadow the builtin palette.
	Palette map[string]string `toml:"palette"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Handlers: HandlersConfig{Capacity: DefaultHandlerCapacity},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig reads a loom.toml file. Missing fields fall back to the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Handlers.Capacity <= 0 {
		cfg.Handlers.Capacity = DefaultHandlerCapacity
	}
	return cfg, nil
}

// ApplyTheme registers the config's palette overrides with the style
// parser. Call once at startup, before any parsing occurs.
func (c *Config) ApplyTheme() error {
	if len(c.Theme.Palette) == 0 {
		return nil
	}
	overrides := make(map[string]tw.Color, len(c.Theme.Palette))
	for name, hex := range c.Theme.Palette {
		if len(hex) == 0 || hex[0] != '#' {
			return fmt.Errorf("theme palette %q: literal %q is not a hex color", name, hex)
		}
		overrides[name] = tw.ParseHexColor(hex)
	}
	tw.SetPalette(overrides)
	return nil
}

func (c *Config) logger() *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
