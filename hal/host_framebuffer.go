//go:build !tinygo

package hal

import "sync"

// hostFramebuffer keeps the last presented frame for the window and
// terminal runners, which draw from their own goroutines.
type hostFramebuffer struct {
	*MonoFramebuffer

	mu     sync.Mutex
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{front: make([]byte, width*height/8)}
	f.MonoFramebuffer = NewMonoFramebuffer(width, height, f.flip)
	return f
}

func (f *hostFramebuffer) flip(buf []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, buf)
	f.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns its sequence number.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}
