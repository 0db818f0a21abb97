package app

import (
	"galton/board/render"
	"galton/internal/buildinfo"
)

func drawSplash(c *render.Canvas) {
	c.Clear()
	w, _ := c.Size()

	centered(c, w, 8, "GALTON BOARD")
	centered(c, w, 20, buildinfo.Short())
	centered(c, w, 40, "B DROP  A VIEW")
	centered(c, w, 50, "STICK TILTS")

	// A small triangle of pins under the title.
	for row := int16(0); row < 3; row++ {
		for i := int16(0); i <= row; i++ {
			c.SetPixel(w/2-row*3+i*6, 30+row*3, render.On)
		}
	}
}

func centered(c *render.Canvas, w, y int16, s string) {
	x := (w - render.TextWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, s)
}
