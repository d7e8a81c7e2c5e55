package frame

import (
	"fmt"
	"sync"
)

// Buffer is the shared output pixel buffer: width*height RGBA8 pixels backed
// by a flat byte slice and guarded by a single mutex. Writers (the frame
// scheduler) replace whole pixel runs; readers (the presentation layer) copy
// the buffer out under the same lock. The two never coordinate beyond the
// lock, so a reader may observe a render in progress.
type Buffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte
}

// Create a new zeroed frame buffer. The buffer is fixed size; presenting at
// a different resolution requires constructing a new buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: invalid buffer dimensions %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*PixelBytes),
	}, nil
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.pix)
}

// SetRegion copies a run of finished pixels into the buffer starting at the
// given flattened pixel index. The data must already be in RGBA8 byte form;
// the lock is held only for the copy.
func (b *Buffer) SetRegion(firstPixel int, data []byte) error {
	if len(data)%PixelBytes != 0 {
		return fmt.Errorf("frame: region size %d is not a whole number of pixels", len(data))
	}
	offset := firstPixel * PixelBytes
	if firstPixel < 0 || offset+len(data) > len(b.pix) {
		return fmt.Errorf("frame: region [%d, %d) outside of buffer with %d pixels",
			firstPixel, firstPixel+len(data)/PixelBytes, b.width*b.height)
	}

	b.mu.Lock()
	copy(b.pix[offset:], data)
	b.mu.Unlock()
	return nil
}

// Clear fills the buffer with a single pixel value.
func (b *Buffer) Clear(pixel RGBA8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < len(b.pix); i += PixelBytes {
		b.pix[i] = pixel.R
		b.pix[i+1] = pixel.G
		b.pix[i+2] = pixel.B
		b.pix[i+3] = pixel.A
	}
}

// Snapshot copies the buffer contents into dst under the buffer lock. The
// copy may capture a frame mid-render; that is expected for a progressive
// viewer and not a consistency violation.
func (b *Buffer) Snapshot(dst []byte) error {
	if len(dst) != len(b.pix) {
		return fmt.Errorf("frame: snapshot destination holds %d bytes, buffer holds %d", len(dst), len(b.pix))
	}
	b.mu.Lock()
	copy(dst, b.pix)
	b.mu.Unlock()
	return nil
}

// Pixel returns the pixel at (x, y). Intended for tests and debugging.
func (b *Buffer) Pixel(x, y int) RGBA8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	offset := (y*b.width + x) * PixelBytes
	return RGBA8{
		R: b.pix[offset],
		G: b.pix[offset+1],
		B: b.pix[offset+2],
		A: b.pix[offset+3],
	}
}
