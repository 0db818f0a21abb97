// Package app wires a HAL to the Galton board: one Step per control loop tick.
package app

import (
	"errors"
	"fmt"

	"galton/board/config"
	"galton/board/input"
	"galton/board/render"
	"galton/board/sim"
	"galton/hal"
	"galton/internal/buildinfo"
	"galton/kernel"
)

var ErrNoDisplay = errors.New("app: no mono display")

// System is one running board.
type System struct {
	h   hal.HAL
	cfg config.Config
	log hal.Logger

	canvas *render.Canvas
	engine *sim.Engine

	spawn *input.Button
	view  *input.Button
	ctrl  *input.Controller

	loop   *kernel.System
	seed   uint32
	splash int
	shown  input.View
}

// New validates cfg, builds the simulation on h and registers the button handler.
func New(h hal.HAL, cfg config.Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Format() != hal.PixelFormatMonoVLSB {
		return nil, ErrNoDisplay
	}
	if fb.Width() != cfg.Layout.Width || fb.Height() != cfg.Layout.Height {
		return nil, fmt.Errorf("%w: display is %dx%d, layout wants %dx%d",
			ErrNoDisplay, fb.Width(), fb.Height(), cfg.Layout.Width, cfg.Layout.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = sim.FoldSeed(uint64(h.Entropy()))
	}

	spawn := input.NewButton(config.Micros(cfg.Debounce))
	view := input.NewButton(config.Micros(cfg.Debounce))

	s := &System{
		h:      h,
		cfg:    cfg,
		log:    h.Logger(),
		canvas: render.NewCanvas(fb),
		engine: sim.New(cfg.Layout, sim.NewXorshift32(seed)),
		spawn:  spawn,
		view:   view,
		ctrl:   input.NewController(spawn, view, config.Micros(cfg.RepeatInterval)),
		loop:   kernel.NewSystem(cfg.LoopDelay),
		seed:   seed,
		splash: int(cfg.Splash / cfg.LoopDelay),
		shown:  input.ViewSimulation,
	}
	h.Buttons().SetEdgeHandler(s.onEdge)

	s.logf("galton: start build=%s seed=%d rows=%d bins=%d loop=%v",
		buildinfo.Long(), seed, cfg.Layout.PinRows, cfg.Layout.Bins, cfg.LoopDelay)
	return s, nil
}

// Engine exposes the simulation for reporting.
func (s *System) Engine() *sim.Engine { return s.engine }

// View is the view drawn by the last step.
func (s *System) View() input.View { return s.shown }

func (s *System) Seed() uint32 { return s.seed }

// Ticks counts completed steps.
func (s *System) Ticks() uint64 { return s.loop.Ticks() }

// Step runs one control loop tick. A panic inside the tick is returned as an error.
func (s *System) Step() error {
	return s.loop.Step(s.guardedTick)
}

// onEdge runs in interrupt context on hardware: it only forwards to the
// button latches. B spawns, A switches the view. hal.Edge maps onto
// input.Edge here so board/input never imports hal.
func (s *System) onEdge(b hal.Button, e hal.Edge, atMicros uint64) {
	var target *input.Button
	switch b {
	case hal.ButtonB:
		target = s.spawn
	case hal.ButtonA:
		target = s.view
	default:
		return
	}
	switch e {
	case hal.EdgeFall:
		target.Edge(input.EdgeFall, atMicros)
	case hal.EdgeRise:
		target.Edge(input.EdgeRise, atMicros)
	}
}

func (s *System) tick() error {
	if s.splash > 0 {
		s.splash--
		drawSplash(s.canvas)
		return s.canvas.Display()
	}

	res := s.ctrl.Update(s.h.Clock().NowMicros(), s.engine)
	if res.Toggled {
		s.logf("galton: view %s (total=%d)", s.ctrl.View(), s.engine.Total())
	}

	s.shown = s.ctrl.View()
	switch s.shown {
	case input.ViewSimulation:
		b := s.cfg.Joystick.Bias(s.h.Joystick().ReadRaw())
		s.engine.Advance(b)
		render.Simulation(s.canvas, s.engine, b)
	case input.ViewHistogram:
		render.Histogram(s.canvas, s.engine)
	}
	return s.canvas.Display()
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
