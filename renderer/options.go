package renderer

import "github.com/Boothwhack/ray-tracing/tracer"

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Bounce budget for each light path.
	MaxBounces int

	// Anti-aliasing sample pattern. Defaults to the 8x pattern.
	SamplePattern tracer.SamplePattern

	// Rows of pixels per unit of work.
	LinesPerChunk int

	// Worker pool size. Zero uses one worker per CPU.
	Workers int
}
