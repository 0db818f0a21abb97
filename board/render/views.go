package render

import (
	"strconv"

	"galton/board/sim"
)

// Bias gauge placement, in pixels from the top right corner.
const (
	gaugeInset = 15
	gaugeY     = 5
	gaugeHalf  = 10
	gaugeTick  = 2
)

// Simulation repaints the lattice, the bins, every ball in flight, the
// ball counter and the bias gauge.
func Simulation(c *Canvas, e *sim.Engine, bias float64) {
	l := e.Layout()
	c.Clear()

	for row := 0; row < l.PinRows; row++ {
		y := int16(l.RowY(row))
		for i := 0; i < l.PinsInRow(row); i++ {
			c.SetPixel(int16(l.PinX(row, i)), y, On)
		}
	}

	bottom := int16(l.BottomY())
	last := int16(l.Height - 1)
	for i := 0; i <= l.Bins; i++ {
		x := int16(l.DividerX(i))
		c.Line(x, bottom, x, last)
	}
	c.Line(0, bottom, int16(l.Width-1), bottom)

	size := 2*l.BallRadius + 1
	e.Each(func(b sim.Ball) {
		x := clampInt(int(b.X)-l.BallRadius, 0, l.Width-size)
		y := clampInt(int(b.Y)-l.BallRadius, 0, l.Height-size)
		c.FillRect(int16(x), int16(y), int16(size), int16(size))
	})

	c.Text(1, 1, counter(e.Total()))

	cx := int16(l.Width - gaugeInset)
	c.Line(cx-gaugeHalf, gaugeY, cx+gaugeHalf, gaugeY)
	tick := cx + int16(bias*gaugeHalf)
	c.Line(tick, gaugeY-gaugeTick, tick, gaugeY+gaugeTick)
}

// Histogram repaints one bar per bin scaled to the fullest bin, with the
// count under every non-empty bar.
func Histogram(c *Canvas, e *sim.Engine) {
	l := e.Layout()
	c.Clear()

	peak := e.MaxBin()
	for i := 0; i < l.Bins; i++ {
		count := e.Bin(i)
		h := l.BarHeight(count, peak)
		x := l.BinStartX(i)
		w := l.BarWidth(i)
		if h > 0 && w > 0 {
			c.FillRect(int16(x), int16(l.BarTop(h)), int16(w), int16(h))
		}
		if count == 0 {
			continue
		}
		label := strconv.FormatUint(uint64(count), 10)
		tx := x + w/2 - int(TextWidth(label))/2
		if tx < x {
			tx = x
		}
		c.Text(int16(tx), int16(l.Height-8), label)
	}

	c.Text(1, 1, counter(e.Total()))
}

func counter(total uint64) string {
	return "N " + strconv.FormatUint(total, 10)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
