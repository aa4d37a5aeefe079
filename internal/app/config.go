package app

import (
	"errors"
	"flag"
	"fmt"

	"torus-life/internal/telemetry"
	"torus-life/pkg/sims/life"

	"github.com/caarlos0/env/v11"
)

// Config represents the runtime parameters shared by the commands. Values are
// read from the environment first and then overridden by flags.
type Config struct {
	Sim      string       `env:"LIFE_SIM"`
	Pattern  life.Pattern `env:"LIFE_PATTERN"`
	Width    int          `env:"LIFE_WIDTH"`
	Height   int          `env:"LIFE_HEIGHT"`
	Seed     int64        `env:"LIFE_SEED"`
	Scale    int          `env:"LIFE_SCALE"`
	TPS      int          `env:"LIFE_TPS"`
	HUDWidth int          `env:"LIFE_HUD_WIDTH"`
	LogEvery int          `env:"LIFE_LOG_EVERY"`

	OTelEndpoint string `env:"LIFE_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"LIFE_OTEL_ENABLED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Pattern:     life.PatternDefault,
		Width:       life.DefaultWidth,
		Height:      life.DefaultHeight,
		Seed:        42,
		Scale:       6,
		TPS:         30,
		HUDWidth:    160,
		OTelEnabled: true,
	}
}

// LoadConfig returns the defaults overridden by any LIFE_* environment
// variables that are set.
func LoadConfig() (*Config, error) {
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadEnv overrides fields whose LIFE_* environment variable is set.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.TextVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: default, random, glider, mwss or empty")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random placement")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 runs unpaced where supported)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "log step timing every n steps (0 disables)")
	fs.StringVar(&c.OTelEndpoint, "otel-endpoint", c.OTelEndpoint, "OTLP/HTTP trace collector URL")
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return errors.New("sim name is required")
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", life.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps must not be negative, got %d", c.TPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// SimConfig renders the simulation settings for a registry factory.
func (c *Config) SimConfig() map[string]string {
	return life.Config{Width: c.Width, Height: c.Height, Pattern: c.Pattern, Seed: c.Seed}.ToMap()
}

// Telemetry returns the tracing options.
func (c *Config) Telemetry() telemetry.Options {
	return telemetry.Options{Endpoint: c.OTelEndpoint, Enabled: c.OTelEnabled}
}
