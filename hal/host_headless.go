//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// TickPeriod is the simulated time between steps.
	TickPeriod time.Duration
	// Ticks stops the run after this many steps; 0 runs until ctx is done.
	Ticks uint64
	// Realtime sleeps TickPeriod between steps instead of running flat out.
	Realtime bool
	// HoldSpawn keeps button B held for the whole run.
	HoldSpawn bool
	// SpawnEvery taps button B once per interval when HoldSpawn is off.
	SpawnEvery time.Duration
	// Joystick is the raw stick sample; 0 leaves it centered.
	Joystick uint16
	// Log receives log lines; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the application without opening a window.
//
// Time is simulated: the clock advances by TickPeriod before every step.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, start Starter) error {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 30 * time.Millisecond
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	clock := &stepClock{}
	h := newHost(cfg.Log, clock)
	if cfg.Joystick != 0 {
		h.stick.set(cfg.Joystick)
	}

	step, err := start(h)
	if err != nil {
		return err
	}
	if step == nil {
		return fmt.Errorf("headless: no step function")
	}

	var tap signal
	if cfg.SpawnEvery > 0 {
		tap = newSignal(cfg.SpawnEvery, cfg.TickPeriod)
	}
	if cfg.HoldSpawn {
		h.buttons.Set(ButtonB, true)
	}

	var ticker *time.Ticker
	if cfg.Realtime {
		ticker = time.NewTicker(cfg.TickPeriod)
		defer ticker.Stop()
	}

	for tick := uint64(0); cfg.Ticks == 0 || tick < cfg.Ticks; tick++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		clock.advance(cfg.TickPeriod)
		if !cfg.HoldSpawn && cfg.SpawnEvery > 0 {
			h.buttons.Set(ButtonB, tap.level(clock.NowMicros()))
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
