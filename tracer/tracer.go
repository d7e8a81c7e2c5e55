package tracer

import (
	"time"

	"github.com/Boothwhack/ray-tracing/log"
)

var logger = log.New("tracer")

// Chunk is a unit of render work: a contiguous run of flattened pixel
// indices [Start, Start+Pixels) covering whole rows of the frame.
type Chunk struct {
	// First flattened pixel index covered by this chunk.
	Start int

	// Number of pixels in this chunk.
	Pixels int
}

// WorkerStats captures what a single worker contributed to a frame.
type WorkerStats struct {
	// Worker index within the pool.
	Worker int

	// Number of chunks this worker completed.
	Chunks int

	// Number of pixels this worker rendered.
	Pixels int

	// Time spent rendering and committing chunks.
	BusyTime time.Duration
}
