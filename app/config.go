package app

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Config holds the fixed settings of an example program. Examples compile
// their settings in; there are no flags and no runtime config files.
type Config struct {
	Title          string     `toml:"title"`
	Width          int        `toml:"width"`
	Height         int        `toml:"height"`
	TargetFPS      int        `toml:"target_fps"`
	FramesInFlight int        `toml:"frames_in_flight"`
	VertexCapacity int        `toml:"vertex_capacity"`
	IndexCapacity  int        `toml:"index_capacity"`
	ClearColor     [4]float32 `toml:"clear_color"`
	VSync          bool       `toml:"vsync"`
	LogLevel       string     `toml:"log_level"`
}

// Option modifies a Config.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTargetFPS sets the frame rate limit. Zero disables it.
func WithTargetFPS(fps int) Option {
	return func(c *Config) { c.TargetFPS = fps }
}

// WithVertexCapacity sets the per-frame vertex buffer size.
func WithVertexCapacity(n int) Option {
	return func(c *Config) { c.VertexCapacity = n }
}

// WithClearColor sets the background color.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// WithLogLevel sets the log level by name (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// DefaultConfig returns the built-in defaults with opts applied.
func DefaultConfig(opts ...Option) Config {
	cfg, err := LoadConfig(nil, opts...)
	if err != nil {
		panic(fmt.Sprintf("app: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// LoadConfig overlays TOML data on the built-in defaults, then applies opts.
// Keys missing from data keep their default value.
func LoadConfig(data []byte, opts ...Option) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(defaultsTOML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse defaults: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	case c.TargetFPS < 0:
		return fmt.Errorf("config: target_fps %d must not be negative", c.TargetFPS)
	case c.FramesInFlight < 1:
		return fmt.Errorf("config: frames_in_flight %d must be at least 1", c.FramesInFlight)
	case c.VertexCapacity < 1 || c.IndexCapacity < 1:
		return fmt.Errorf("config: buffer capacities (%d vertices, %d indices) must be positive",
			c.VertexCapacity, c.IndexCapacity)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}
