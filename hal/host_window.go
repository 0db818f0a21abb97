//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"
	"time"

	"galton/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pixel colors of the simulated OLED panel.
var (
	panelOn  = [4]byte{0xD8, 0xF0, 0xFF, 0xFF}
	panelOff = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(cfg WindowConfig, start Starter) error {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 30 * time.Millisecond
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}

	h := newHost(os.Stdout, newWallClock())
	step, err := start(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, kbd: newHostKeyboard(h.buttons, h.stick), step: step}
	ebiten.SetWindowTitle("Galton (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(hostWidth*cfg.Scale, hostHeight*cfg.Scale)
	ebiten.SetTPS(ticksPerSecond(cfg.TickPeriod))
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	kbd     *hostKeyboard
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    StepFunc
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(fb.Buffer()))
		g.fbImg = ebiten.NewImage(w, h)
	}

	fb.snapshot(g.scratch)

	dst := g.img.Pix
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := panelOff
			if MonoPixel(g.scratch, w, h, x, y) {
				c = panelOn
			}
			copy(dst[(y*w+x)*4:], c[:])
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return hostWidth, hostHeight
}
