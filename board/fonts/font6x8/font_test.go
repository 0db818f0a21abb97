package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	set map[[2]int16]bool
}

func (r *recorder) Size() (x, y int16) { return 128, 64 }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	r.set[[2]int16{x, y}] = true
}
func (r *recorder) Display() error { return nil }

func TestGlyphTableCoversPrintableUpperHalf(t *testing.T) {
	if want := (0x5f - 0x20 + 1) * 7; len(glyphData) != want {
		t.Fatalf("len(glyphData) = %d, want %d", len(glyphData), want)
	}
}

func TestDrawStaysInCell(t *testing.T) {
	for r := rune(0x20); r <= 0x7e; r++ {
		rec := &recorder{set: map[[2]int16]bool{}}
		Font.GetGlyph(r).Draw(rec, 10, 20, color.RGBA{A: 255})
		for p := range rec.set {
			if p[0] < 10 || p[0] >= 10+Width-1 || p[1] < 20-Ascent || p[1] > 20 {
				t.Fatalf("glyph %q set pixel %v outside its cell", r, p)
			}
		}
	}
}

func TestLowercaseFoldsToUppercase(t *testing.T) {
	if glyphIndex('n') != glyphIndex('N') {
		t.Fatalf("glyphIndex('n') = %d, want %d", glyphIndex('n'), glyphIndex('N'))
	}
	if glyphIndex('~') != glyphIndex('?') {
		t.Fatalf("glyphIndex('~') = %d, want '?'", glyphIndex('~'))
	}
}

func TestLineWidth(t *testing.T) {
	_, outbox := tinyfont.LineWidth(Font, "N 12")
	if outbox != 4*Width {
		t.Fatalf("LineWidth() = %d, want %d", outbox, 4*Width)
	}
}
