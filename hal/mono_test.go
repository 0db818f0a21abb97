package hal

import (
	"errors"
	"testing"
)

func TestMonoFramebufferLayout(t *testing.T) {
	fb := NewMonoFramebuffer(128, 64, nil)
	if got := len(fb.Buffer()); got != 128*64/8 {
		t.Fatalf("len(Buffer()) = %d, want %d", got, 128*64/8)
	}

	i, mask := MonoIndex(128, 5, 13)
	if i != 5+128 || mask != 1<<5 {
		t.Fatalf("MonoIndex(5, 13) = %d, %#x, want %d, %#x", i, mask, 5+128, 1<<5)
	}

	fb.Buffer()[i] |= mask
	if !MonoPixel(fb.Buffer(), 128, 64, 5, 13) {
		t.Fatal("MonoPixel(5, 13) = false, want true")
	}
	if MonoPixel(fb.Buffer(), 128, 64, 5, 12) {
		t.Fatal("MonoPixel(5, 12) = true, want false")
	}
	if MonoPixel(fb.Buffer(), 128, 64, -1, 13) || MonoPixel(fb.Buffer(), 128, 64, 5, 64) {
		t.Fatal("MonoPixel() out of range = true, want false")
	}

	fb.Clear()
	if MonoPixel(fb.Buffer(), 128, 64, 5, 13) {
		t.Fatal("MonoPixel() after Clear() = true, want false")
	}
}

func TestMonoFramebufferPresent(t *testing.T) {
	errFlush := errors.New("flush")
	var got []byte
	fb := NewMonoFramebuffer(8, 8, func(buf []byte) error {
		got = buf
		return errFlush
	})
	fb.Buffer()[3] = 0xFF
	if err := fb.Present(); !errors.Is(err, errFlush) {
		t.Fatalf("Present() = %v, want errFlush", err)
	}
	if len(got) != 8 || got[3] != 0xFF {
		t.Fatalf("flush got %v, want the framebuffer bytes", got)
	}

	if err := NewMonoFramebuffer(8, 8, nil).Present(); err != nil {
		t.Fatalf("Present() without flush = %v, want nil", err)
	}
}
