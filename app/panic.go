package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"galton/board/fonts/font6x8"
	"galton/board/render"
	"galton/hal"
)

func (s *System) guardedTick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("app: panic in step: %v", r)
		}
	}()
	return s.tick()
}

// ShowFatal logs err and, when a mono display is available, paints it on
// screen. h may be partially initialized.
func ShowFatal(h hal.HAL, err error) {
	if h == nil || err == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("galton: fatal: %v", err))
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatMonoVLSB {
		return
	}

	c := render.NewCanvas(fb)
	c.Clear()

	cols := fb.Width() / font6x8.Width
	rows := fb.Height() / font6x8.Height
	lines := append([]string{"FATAL"}, wrapText(err.Error(), cols)...)
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for i, line := range lines {
		c.Text(0, int16(i*font6x8.Height), line)
	}
	c.Line(0, font6x8.Height-1, int16(fb.Width()-1), font6x8.Height-1)
	_ = c.Display()
}

// wrapText splits s into lines of at most cols runes, dropping leading spaces
// of continuation lines.
func wrapText(s string, cols int) []string {
	var lines []string
	for len(s) > 0 {
		chunk, rest := takeRunes(s, cols)
		if chunk == "" {
			break
		}
		lines = append(lines, chunk)
		s = strings.TrimLeft(rest, " ")
	}
	return lines
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
