package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate when a field is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable constants of a session.
type Config struct {
	Rows int
	Cols int

	// GameTime is the countdown length in seconds.
	GameTime int

	// BaseDropInterval is the gravity interval at level 1.
	BaseDropInterval time.Duration

	// TickPeriod is how often the gravity task runs. It only bounds how
	// promptly a drop is noticed; the drop rate itself is BaseDropInterval.
	TickPeriod time.Duration

	// TimerPeriod is how often the countdown is decremented by one second.
	TimerPeriod time.Duration
}

// DefaultConfig returns the standard 20x10 board with a four minute countdown.
func DefaultConfig() Config {
	return Config{
		Rows:             20,
		Cols:             10,
		GameTime:         240,
		BaseDropInterval: 1000 * time.Millisecond,
		TickPeriod:       30 * time.Millisecond,
		TimerPeriod:      time.Second,
	}
}

// Validate reports the first field that cannot produce a playable session.
func (c Config) Validate() error {
	switch {
	case c.Rows < maxShapeSize:
		return fmt.Errorf("%w: rows must be at least %d, got %d", ErrInvalidConfig, maxShapeSize, c.Rows)
	case c.Cols < maxShapeSize:
		return fmt.Errorf("%w: cols must be at least %d, got %d", ErrInvalidConfig, maxShapeSize, c.Cols)
	case c.GameTime <= 0:
		return fmt.Errorf("%w: game time must be positive, got %d", ErrInvalidConfig, c.GameTime)
	case c.BaseDropInterval <= 0:
		return fmt.Errorf("%w: base drop interval must be positive, got %s", ErrInvalidConfig, c.BaseDropInterval)
	case c.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period must be positive, got %s", ErrInvalidConfig, c.TickPeriod)
	case c.TimerPeriod <= 0:
		return fmt.Errorf("%w: timer period must be positive, got %s", ErrInvalidConfig, c.TimerPeriod)
	}
	return nil
}
