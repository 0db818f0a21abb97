// Package config holds the board's tunables.
package config

import (
	"errors"
	"fmt"
	"time"

	"galton/board/bias"
	"galton/board/geometry"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// LoopDelay is the sleep between control loop ticks.
	LoopDelay time.Duration `yaml:"loop_delay"`
	// Debounce is the minimum spacing between two accepted presses of one button.
	Debounce time.Duration `yaml:"debounce"`
	// RepeatInterval is the hold-to-spawn period.
	RepeatInterval time.Duration `yaml:"repeat_interval"`
	// Splash is how long the boot screen stays up.
	Splash time.Duration `yaml:"splash"`
	// Seed feeds the pin decisions. Zero draws a fresh seed from the HAL at startup.
	Seed uint32 `yaml:"seed"`

	Joystick bias.Calibration `yaml:"joystick"`
	Layout   geometry.Layout  `yaml:"layout"`
}

// Default returns the settings the board ships with.
func Default() Config {
	return Config{
		LoopDelay:      30 * time.Millisecond,
		Debounce:       150 * time.Millisecond,
		RepeatInterval: 100 * time.Millisecond,
		Splash:         time.Second,
		Joystick:       bias.DefaultCalibration(),
		Layout:         geometry.Default(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.LoopDelay <= 0:
		return fmt.Errorf("%w: loop_delay %v", ErrInvalid, c.LoopDelay)
	case c.Debounce < 0:
		return fmt.Errorf("%w: debounce %v", ErrInvalid, c.Debounce)
	case c.RepeatInterval <= 0:
		return fmt.Errorf("%w: repeat_interval %v", ErrInvalid, c.RepeatInterval)
	case c.Splash < 0:
		return fmt.Errorf("%w: splash %v", ErrInvalid, c.Splash)
	}
	if err := c.Joystick.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Micros converts d for the microsecond clocks used by the input layer.
func Micros(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d.Microseconds())
}
