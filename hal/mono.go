package hal

// MonoFramebuffer is a 1bpp page-addressed framebuffer (PixelFormatMonoVLSB).
//
// Present hands the whole buffer to flush; a nil flush makes Present a no-op.
type MonoFramebuffer struct {
	w     int
	h     int
	buf   []byte
	flush func(buf []byte) error
}

// NewMonoFramebuffer allocates w*h/8 bytes. h must be a multiple of 8.
func NewMonoFramebuffer(w, h int, flush func(buf []byte) error) *MonoFramebuffer {
	return &MonoFramebuffer{
		w:     w,
		h:     h,
		buf:   make([]byte, w*h/8),
		flush: flush,
	}
}

func (f *MonoFramebuffer) Width() int          { return f.w }
func (f *MonoFramebuffer) Height() int         { return f.h }
func (f *MonoFramebuffer) Format() PixelFormat { return PixelFormatMonoVLSB }
func (f *MonoFramebuffer) Buffer() []byte      { return f.buf }

func (f *MonoFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *MonoFramebuffer) Present() error {
	if f.flush == nil {
		return nil
	}
	return f.flush(f.buf)
}

// MonoIndex returns the byte offset and bit mask of pixel x,y.
func MonoIndex(w, x, y int) (int, byte) {
	return x + (y/8)*w, 1 << uint(y%8)
}

// MonoPixel reports whether pixel x,y is lit. Out-of-range pixels are dark.
func MonoPixel(buf []byte, w, h, x, y int) bool {
	if x < 0 || x >= w || y < 0 || y >= h {
		return false
	}
	i, mask := MonoIndex(w, x, y)
	if i >= len(buf) {
		return false
	}
	return buf[i]&mask != 0
}
