// Package sim advances balls through the pin lattice and tallies where they land.
package sim

import (
	"math"
	"math/bits"

	"galton/board/geometry"
)

// MaxBalls bounds how many balls can be in flight at once.
const MaxBalls = 50

const activeWords = (MaxBalls + 63) / 64

// Ball is a position in display coordinates.
type Ball struct {
	X float64
	Y float64
}

// Engine owns the ball arena and the bins. It is not safe for concurrent use;
// only the control loop calls into it.
type Engine struct {
	layout geometry.Layout
	rng    Rand

	balls  [MaxBalls]Ball
	active [activeWords]uint64

	bins  []uint32
	total uint64
}

func New(layout geometry.Layout, rng Rand) *Engine {
	e := &Engine{
		layout: layout,
		rng:    rng,
		bins:   make([]uint32, layout.Bins),
	}
	return e
}

func (e *Engine) Layout() geometry.Layout { return e.layout }

// Reset clears every ball and every bin.
func (e *Engine) Reset() {
	e.active = [activeWords]uint64{}
	e.balls = [MaxBalls]Ball{}
	for i := range e.bins {
		e.bins[i] = 0
	}
	e.total = 0
}

// Spawn drops a ball at the top center. It reports false, and changes
// nothing, when every slot is taken.
func (e *Engine) Spawn() bool {
	for w := range e.active {
		free := ^e.active[w]
		if w == len(e.active)-1 && MaxBalls%64 != 0 {
			free &= (1 << (MaxBalls % 64)) - 1
		}
		if free == 0 {
			continue
		}
		i := w*64 + bits.TrailingZeros64(free)
		e.balls[i] = Ball{X: e.layout.SpawnX(), Y: 0}
		e.active[w] |= 1 << (i % 64)
		return true
	}
	return false
}

// Advance moves every active ball by one tick.
func (e *Engine) Advance(b float64) {
	for w := range e.active {
		set := e.active[w]
		for set != 0 {
			bit := bits.TrailingZeros64(set)
			set &^= 1 << bit
			e.step(w*64+bit, b)
		}
	}
}

func (e *Engine) step(i int, b float64) {
	ball := &e.balls[i]
	ball.Y += 1

	e.collide(ball, b)

	if ball.Y >= e.layout.BottomY() {
		e.land(i)
		return
	}

	r := float64(e.layout.BallRadius)
	ball.X = clamp(ball.X, r, float64(e.layout.Width-1)-r)
}

// collide deflects the ball off at most one pin and pushes it past that row.
func (e *Engine) collide(ball *Ball, b float64) {
	half := e.layout.HalfSpacing()
	for row := 0; row < e.layout.PinRows; row++ {
		rowY := e.layout.RowY(row)
		if ball.Y < rowY || ball.Y >= rowY+1 {
			continue
		}
		for pin := 0; pin < e.layout.PinsInRow(row); pin++ {
			if math.Abs(ball.X-e.layout.PinX(row, pin)) < half {
				e.deflect(ball, b)
				ball.Y = rowY + 1
				return
			}
		}
	}
}

func (e *Engine) deflect(ball *Ball, b float64) {
	if e.rng.Intn(100) < DeflectThreshold(b) {
		ball.X += e.layout.HalfSpacing()
	} else {
		ball.X -= e.layout.HalfSpacing()
	}
}

func (e *Engine) land(i int) {
	ball := &e.balls[i]
	ball.X = clamp(ball.X, 0, float64(e.layout.Width-1))
	e.bins[e.layout.BinIndex(ball.X)]++
	e.total++
	e.active[i/64] &^= 1 << (i % 64)
}

// DeflectThreshold is the percent chance that a bounce goes right.
func DeflectThreshold(b float64) int {
	t := 50 + int(math.Round(b*40))
	if t < 5 {
		return 5
	}
	if t > 95 {
		return 95
	}
	return t
}

// Total is the number of balls that have landed since the last Reset.
func (e *Engine) Total() uint64 { return e.total }

// Bins returns a copy of the bin counts.
func (e *Engine) Bins() []uint32 {
	out := make([]uint32, len(e.bins))
	copy(out, e.bins)
	return out
}

func (e *Engine) Bin(i int) uint32 {
	if i < 0 || i >= len(e.bins) {
		return 0
	}
	return e.bins[i]
}

func (e *Engine) NumBins() int { return len(e.bins) }

func (e *Engine) MaxBin() uint32 {
	var max uint32
	for _, c := range e.bins {
		if c > max {
			max = c
		}
	}
	return max
}

// Active is the number of balls in flight.
func (e *Engine) Active() int {
	n := 0
	for _, w := range e.active {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls fn for every ball in flight, in slot order.
func (e *Engine) Each(fn func(Ball)) {
	for w := range e.active {
		set := e.active[w]
		for set != 0 {
			bit := bits.TrailingZeros64(set)
			set &^= 1 << bit
			fn(e.balls[w*64+bit])
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
