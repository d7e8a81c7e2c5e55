package renderer

import "github.com/Boothwhack/ray-tracing/log"

var logger = log.New("renderer")

type Renderer interface {
	// Render frame(s). For interactive renderers this blocks until the
	// viewer window closes.
	Render() error

	// Shutdown renderer and release any attached resources.
	Close()

	// Get statistics for the most recently rendered frame.
	Stats() FrameStats
}
