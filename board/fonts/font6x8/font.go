package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 6x8 monospace bitmap font covering ASCII 0x20-0x5F.
//
// Lowercase letters are drawn as uppercase; anything else becomes '?'.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

const (
	Width  = 6
	Height = 8
	// Ascent is the distance from the top of a cell to the baseline.
	Ascent = 7
)

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * 7
	for row := 0; row < 7; row++ {
		b := glyphData[base+row]
		// Bits are stored as 0b000xxxxx (bit4 = leftmost pixel).
		for col := 0; col < 5; col++ {
			if b&(0x10>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Ascent-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -Ascent,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0x20 || r > 0x5f {
		r = '?'
	}
	return int(r - 0x20)
}

// glyphData holds seven rows per glyph, top to bottom, starting at ' '.
var glyphData = [...]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // ' '
	0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, // '!'
	0x0A, 0x0A, 0x0A, 0x00, 0x00, 0x00, 0x00, // '"'
	0x0A, 0x0A, 0x1F, 0x0A, 0x1F, 0x0A, 0x0A, // '#'
	0x04, 0x0F, 0x14, 0x0E, 0x05, 0x1E, 0x04, // '$'
	0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03, // '%'
	0x0C, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0D, // '&'
	0x0C, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00, // '\''
	0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02, // '('
	0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08, // ')'
	0x00, 0x04, 0x15, 0x0E, 0x15, 0x04, 0x00, // '*'
	0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00, // '+'
	0x00, 0x00, 0x00, 0x00, 0x0C, 0x04, 0x08, // ','
	0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00, // '-'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C, // '.'
	0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00, // '/'
	0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E, // '0'
	0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E, // '1'
	0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F, // '2'
	0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E, // '3'
	0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02, // '4'
	0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E, // '5'
	0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E, // '6'
	0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08, // '7'
	0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E, // '8'
	0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C, // '9'
	0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00, // ':'
	0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x04, 0x08, // ';'
	0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02, // '<'
	0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00, // '='
	0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08, // '>'
	0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04, // '?'
	0x0E, 0x11, 0x01, 0x0D, 0x15, 0x15, 0x0E, // '@'
	0x0E, 0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, // 'A'
	0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E, // 'B'
	0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E, // 'C'
	0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C, // 'D'
	0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F, // 'E'
	0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10, // 'F'
	0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F, // 'G'
	0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11, // 'H'
	0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E, // 'I'
	0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C, // 'J'
	0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11, // 'K'
	0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F, // 'L'
	0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11, // 'M'
	0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11, // 'N'
	0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, // 'O'
	0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10, // 'P'
	0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D, // 'Q'
	0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11, // 'R'
	0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E, // 'S'
	0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, // 'T'
	0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E, // 'U'
	0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04, // 'V'
	0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A, // 'W'
	0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11, // 'X'
	0x11, 0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, // 'Y'
	0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F, // 'Z'
	0x0E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0E, // '['
	0x00, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00, // '\\'
	0x0E, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0E, // ']'
	0x04, 0x0A, 0x11, 0x00, 0x00, 0x00, 0x00, // '^'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1F, // '_'
}
