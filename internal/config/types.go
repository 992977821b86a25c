// Package config loads and validates floatkit engine configuration.
package config

import (
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/application/positioning"
	"github.com/alexisbeaulieu97/floatkit/internal/domain/placement"
)

// Config represents the full floatkit configuration document.
type Config struct {
	Engine     Engine     `yaml:"engine" json:"engine"`
	Defaults   Defaults   `yaml:"defaults" json:"defaults"`
	Playground Playground `yaml:"playground" json:"playground"`
}

// Engine holds the pixel-space engine parameters.
type Engine struct {
	Margin       float64 `yaml:"margin" json:"margin" validate:"gte=0,lte=64"`
	ArrowReserve float64 `yaml:"arrow_reserve" json:"arrow_reserve" validate:"gte=0,lte=64"`
	ThrottleMS   int     `yaml:"throttle_ms" json:"throttle_ms" validate:"gte=1,lte=1000"`
}

// Defaults is the placement request used when a caller does not set one.
type Defaults struct {
	Placement string `yaml:"placement" json:"placement" validate:"placement"`
	Strategy  string `yaml:"strategy" json:"strategy" validate:"strategy"`
	// Offset is [main] or [cross, main].
	Offset []float64 `yaml:"offset,omitempty" json:"offset,omitempty" validate:"max=2"`
	Arrow  bool      `yaml:"arrow" json:"arrow"`
}

// Playground overrides the engine parameters in terminal cell space, where
// one cell is the smallest meaningful gap.
type Playground struct {
	Margin       float64 `yaml:"margin" json:"margin" validate:"gte=0,lte=16"`
	ArrowReserve float64 `yaml:"arrow_reserve" json:"arrow_reserve" validate:"gte=0,lte=16"`
}

// Default returns the engine defaults.
func Default() Config {
	return Config{
		Engine: Engine{
			Margin:       placement.DefaultMargin,
			ArrowReserve: placement.DefaultArrowReserve,
			ThrottleMS:   int(positioning.DefaultThrottle / time.Millisecond),
		},
		Defaults: Defaults{
			Placement: string(placement.DefaultPlacement),
			Strategy:  string(placement.DefaultStrategy),
		},
		Playground: Playground{Margin: 1, ArrowReserve: 1},
	}
}

// ApplyDefaults fills fields whose zero value means "unset". Margins are
// left alone since zero is a meaningful margin.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Engine.ThrottleMS == 0 {
		c.Engine.ThrottleMS = def.Engine.ThrottleMS
	}
	if c.Defaults.Placement == "" {
		c.Defaults.Placement = def.Defaults.Placement
	}
	if c.Defaults.Strategy == "" {
		c.Defaults.Strategy = def.Defaults.Strategy
	}
}

// PlacementOffset converts the configured list into a placement offset.
func (d Defaults) PlacementOffset() placement.Offset {
	switch len(d.Offset) {
	case 0:
		return placement.Offset{}
	case 1:
		return placement.ScalarOffset(d.Offset[0])
	default:
		return placement.PairOffset(d.Offset[0], d.Offset[1])
	}
}

// Throttle returns the scheduler throttle window.
func (c Config) Throttle() time.Duration {
	return time.Duration(c.Engine.ThrottleMS) * time.Millisecond
}

// Settings returns the scheduler request for pixel-space panels.
func (c Config) Settings() positioning.Settings {
	return positioning.Settings{
		Placement:    placement.Parse(c.Defaults.Placement),
		Strategy:     placement.ParseStrategy(c.Defaults.Strategy),
		Offset:       c.Defaults.PlacementOffset(),
		Arrow:        placement.ArrowOptions{Enabled: c.Defaults.Arrow},
		Margin:       c.Engine.Margin,
		ArrowReserve: c.Engine.ArrowReserve,
	}
}

// PlaygroundSettings returns Settings with the cell-space overrides.
func (c Config) PlaygroundSettings() positioning.Settings {
	s := c.Settings()
	s.Margin = c.Playground.Margin
	s.ArrowReserve = c.Playground.ArrowReserve
	return s
}
