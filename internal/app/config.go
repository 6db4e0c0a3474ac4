package app

import (
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// Presentation backends.
const (
	ModeWindow   = "window"
	ModeTerm     = "term"
	ModeHeadless = "headless"
)

// Config represents the command-line parameters for the application. All
// values are fixed once parsed; nothing is reconfigurable at runtime.
type Config struct {
	Mode     string
	Size     int // grid side length (square grid)
	Scale    int // pixels per cell in window mode
	PeriodMS int // tick period in milliseconds
	Seed     int64
	MaxGen   int // headless generation bound, 0 = run until interrupted
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:     ModeWindow,
		Size:     100,
		Scale:    6,
		PeriodMS: 100,
		Seed:     42,
		MaxGen:   1000,
	}
}

// Bind attaches the configuration to the flaggy default parser.
func (c *Config) Bind() {
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&c.Mode, "m", "mode", "presentation backend [window|term|headless]")
	flaggy.Int(&c.Size, "n", "size", "grid side length")
	flaggy.Int(&c.Scale, "c", "cell", "pixels per cell (window mode)")
	flaggy.Int(&c.PeriodMS, "p", "period", "tick period in milliseconds")
	flaggy.Int64(&c.Seed, "s", "seed", "seed for the initial generation")
	flaggy.Int(&c.MaxGen, "g", "generations", "stop after this many generations (headless, 0 = unbounded)")
}

// Validate rejects option combinations the simulation cannot run with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerm, ModeHeadless:
	default:
		return errors.Errorf("[Config.Validate] unknown mode %q", c.Mode)
	}
	if c.Size <= 0 {
		return errors.Errorf("[Config.Validate] non-positive grid size %d", c.Size)
	}
	if c.Scale <= 0 {
		return errors.Errorf("[Config.Validate] non-positive cell scale %d", c.Scale)
	}
	if c.PeriodMS <= 0 {
		return errors.Errorf("[Config.Validate] non-positive tick period %dms", c.PeriodMS)
	}
	if c.MaxGen < 0 {
		return errors.Errorf("[Config.Validate] negative generation bound %d", c.MaxGen)
	}
	return nil
}

// Period returns the tick period as a duration.
func (c *Config) Period() time.Duration {
	return time.Duration(c.PeriodMS) * time.Millisecond
}
