// Package geometry holds the board layout: pin lattice, bins and histogram bars.
//
// Everything here is a pure function of a Layout value. Nothing is materialized.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidLayout = errors.New("geometry: invalid layout")

// Layout describes the display and the lattice drawn on it.
type Layout struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	PinRows       int `yaml:"pin_rows"`
	PinRowStartY  int `yaml:"pin_row_start_y"`
	PinRowSpacing int `yaml:"pin_row_spacing"`
	PinSpacing    int `yaml:"pin_spacing"`
	BallRadius    int `yaml:"ball_radius"`
	BottomMargin  int `yaml:"bottom_margin"`

	Bins int `yaml:"bins"`

	// HistogramHeadroom is subtracted from Height to get the tallest bar.
	HistogramHeadroom int `yaml:"histogram_headroom"`
	// TitleRows are reserved at the top of the histogram view.
	TitleRows int `yaml:"title_rows"`
}

// Default returns the layout of the 128x64 SSD1306 board.
func Default() Layout {
	return Layout{
		Width:             128,
		Height:            64,
		PinRows:           12,
		PinRowStartY:      8,
		PinRowSpacing:     4,
		PinSpacing:        9,
		BallRadius:        1,
		BottomMargin:      5,
		Bins:              13,
		HistogramHeadroom: 15,
		TitleRows:         10,
	}
}

// Validate reports whether the layout can be drawn on its own display.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: display %dx%d", ErrInvalidLayout, l.Width, l.Height)
	case l.Height%8 != 0:
		return fmt.Errorf("%w: height %d is not a whole number of pages", ErrInvalidLayout, l.Height)
	case l.PinRows <= 0 || l.PinRowSpacing <= 0 || l.PinSpacing <= 0:
		return fmt.Errorf("%w: lattice rows=%d spacing=%d/%d", ErrInvalidLayout, l.PinRows, l.PinRowSpacing, l.PinSpacing)
	case l.BallRadius < 0 || 2*l.BallRadius+1 > l.Width:
		return fmt.Errorf("%w: ball radius %d", ErrInvalidLayout, l.BallRadius)
	case l.Bins <= 0 || l.Bins > l.Width:
		return fmt.Errorf("%w: %d bins on %d columns", ErrInvalidLayout, l.Bins, l.Width)
	case l.BottomY() >= float64(l.Height):
		return fmt.Errorf("%w: lattice bottom %.0f below display height %d", ErrInvalidLayout, l.BottomY(), l.Height)
	case l.MaxBarHeight() <= 0:
		return fmt.Errorf("%w: histogram headroom %d", ErrInvalidLayout, l.HistogramHeadroom)
	case l.TitleRows < 0 || l.TitleRows >= l.Height:
		return fmt.Errorf("%w: title rows %d", ErrInvalidLayout, l.TitleRows)
	}
	return nil
}

// PinsInRow returns the pin count of row (row+1, a triangle).
func (l Layout) PinsInRow(row int) int { return row + 1 }

// RowY returns the vertical position of a pin row.
func (l Layout) RowY(row int) float64 {
	return float64(l.PinRowStartY + row*l.PinRowSpacing)
}

// RowWidth is the distance between the first and last pin of a row.
func (l Layout) RowWidth(row int) float64 {
	return float64((l.PinsInRow(row) - 1) * l.PinSpacing)
}

// RowStartX is the x of the leftmost pin of a row.
func (l Layout) RowStartX(row int) float64 {
	return (float64(l.Width) - l.RowWidth(row)) / 2
}

// PinX returns the center of pin idx in row.
func (l Layout) PinX(row, idx int) float64 {
	return l.RowStartX(row) + float64(idx*l.PinSpacing)
}

// HalfSpacing is both the collision radius of a pin and the deflection step.
func (l Layout) HalfSpacing() float64 {
	return float64(l.PinSpacing) / 2
}

// BottomY is where balls leave the lattice and land in a bin.
func (l Layout) BottomY() float64 {
	return float64(l.PinRowStartY + l.PinRows*l.PinRowSpacing + l.BottomMargin)
}

// SpawnX is where new balls enter.
func (l Layout) SpawnX() float64 { return float64(l.Width) / 2 }

func (l Layout) BinWidth() float64 {
	return float64(l.Width) / float64(l.Bins)
}

// BinIndex maps a horizontal position to its bin, clamped to the valid range.
func (l Layout) BinIndex(x float64) int {
	idx := int(math.Floor(x / l.BinWidth()))
	return clampInt(idx, 0, l.Bins-1)
}

// BinStartX is the left edge of bin i in pixels. i == Bins yields the right edge.
func (l Layout) BinStartX(i int) int {
	return int(float64(i) * l.BinWidth())
}

// DividerX is the column of the divider at the left of bin i, kept on screen.
func (l Layout) DividerX(i int) int {
	x := l.BinStartX(i)
	if x >= l.Width {
		x = l.Width - 1
	}
	return x
}

func (l Layout) MaxBarHeight() int {
	return l.Height - l.HistogramHeadroom
}

// BarHeight scales count against max. An empty histogram has no bars.
func (l Layout) BarHeight(count, max uint32) int {
	if max == 0 {
		return 0
	}
	limit := l.MaxBarHeight()
	h := int(float64(count) / float64(max) * float64(limit))
	return clampInt(h, 0, limit)
}

// BarWidth leaves a 1px gap between bars and keeps the last bar on screen.
func (l Layout) BarWidth(i int) int {
	x := l.BinStartX(i)
	w := int(l.BinWidth()) - 1
	if w < 1 {
		w = 1
	}
	if x >= l.Width {
		return 0
	}
	if x+w >= l.Width {
		w = l.Width - x - 1
	}
	return w
}

// BarTop is the first row of a bar of height h, never inside the title band.
func (l Layout) BarTop(h int) int {
	y := l.Height - 1 - h
	if y < l.TitleRows {
		y = l.TitleRows
	}
	return y
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
