// Package render draws the board's two views into a 1bpp page framebuffer.
package render

import (
	"image/color"

	"galton/board/fonts/font6x8"
	"galton/hal"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}
)

// Canvas adapts a mono framebuffer to drivers.Displayer. Every write is clipped.
type Canvas struct {
	fb  hal.Framebuffer
	buf []byte
	w   int16
	h   int16
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{
		fb:  fb,
		buf: fb.Buffer(),
		w:   int16(fb.Width()),
		h:   int16(fb.Height()),
	}
}

func (c *Canvas) Size() (x, y int16) { return c.w, c.h }

// SetPixel lights the pixel for any non-black color.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i, mask := hal.MonoIndex(int(c.w), int(x), int(y))
	if col.R|col.G|col.B != 0 {
		c.buf[i] |= mask
	} else {
		c.buf[i] &^= mask
	}
}

// Display flushes the whole framebuffer.
func (c *Canvas) Display() error { return c.fb.Present() }

func (c *Canvas) Clear() { c.fb.Clear() }

func (c *Canvas) Pixel(x, y int16) bool {
	return hal.MonoPixel(c.buf, int(c.w), int(c.h), int(x), int(y))
}

func (c *Canvas) Line(x0, y0, x1, y1 int16) {
	tinydraw.Line(c, x0, y0, x1, y1, On)
}

// FillRect lights a w x h block at x,y. Empty rectangles draw nothing.
func (c *Canvas) FillRect(x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	tinydraw.FilledRectangle(c, x, y, w, h, On)
}

// Text draws s with its top-left cell corner at x,y. The cells are cleared
// first, like the SSD1306 string routine that writes whole columns.
func (c *Canvas) Text(x, y int16, s string) {
	w := TextWidth(s)
	if w == 0 {
		return
	}
	tinydraw.FilledRectangle(c, x, y, w, font6x8.Height, Off)
	tinyfont.WriteLine(c, font6x8.Font, x, y+font6x8.Ascent, s, On)
}

// TextWidth is the advance of s in pixels.
func TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(font6x8.Font, s)
	return int16(outbox)
}
