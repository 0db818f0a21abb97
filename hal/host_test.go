//go:build !tinygo

package hal

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestHostFramebufferShowsOnlyPresentedFrames(t *testing.T) {
	h := newHost(&bytes.Buffer{}, &stepClock{})
	fb := h.Display().Framebuffer()

	fb.Buffer()[0] = 0x01
	snap := make([]byte, len(fb.Buffer()))
	if seq := h.fb.snapshot(snap); seq != 0 || snap[0] != 0 {
		t.Fatalf("snapshot() before Present = %d, %#x, want 0, 0", seq, snap[0])
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if seq := h.fb.snapshot(snap); seq != 1 || snap[0] != 0x01 {
		t.Fatalf("snapshot() after Present = %d, %#x, want 1, 0x01", seq, snap[0])
	}
}

func TestHostDefaults(t *testing.T) {
	var out bytes.Buffer
	h := newHost(&out, &stepClock{})

	fb := h.Display().Framebuffer()
	if fb.Width() != 128 || fb.Height() != 64 || fb.Format() != PixelFormatMonoVLSB {
		t.Fatalf("framebuffer = %dx%d/%d, want 128x64 mono", fb.Width(), fb.Height(), fb.Format())
	}
	if got := h.Joystick().ReadRaw(); got != JoystickRawCenter {
		t.Fatalf("ReadRaw() = %d, want %d", got, JoystickRawCenter)
	}

	h.stick.set(9000)
	if got := h.Joystick().ReadRaw(); got != JoystickRawMax {
		t.Fatalf("ReadRaw() after set(9000) = %d, want %d", got, JoystickRawMax)
	}

	h.LED().High()
	h.LED().High()
	h.LED().Low()
	if got := strings.Count(out.String(), "led:"); got != 2 {
		t.Fatalf("led log lines = %d, want 2:\n%s", got, out.String())
	}
}

func TestHostEntropyDiffersAcrossHALs(t *testing.T) {
	// Both HALs start their clocks at zero, so only the entropy source can
	// tell them apart.
	a := newHost(&bytes.Buffer{}, &stepClock{})
	b := newHost(&bytes.Buffer{}, &stepClock{})

	seen := map[uint32]bool{}
	for i := 0; i < 4; i++ {
		seen[a.Entropy()] = true
		seen[b.Entropy()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("Entropy() returned %d distinct values over 8 draws, want several", len(seen))
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := []struct {
		period time.Duration
		want   int
	}{
		{30 * time.Millisecond, 33},
		{time.Second, 1},
		{1500 * time.Millisecond, 1},
		{5 * time.Second, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := ticksPerSecond(tt.period); got != tt.want {
			t.Fatalf("ticksPerSecond(%v) = %d, want %d", tt.period, got, tt.want)
		}
	}
}
