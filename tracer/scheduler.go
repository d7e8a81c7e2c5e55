package tracer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Boothwhack/ray-tracing/frame"
)

// DefaultLinesPerChunk is the default number of frame rows per unit of work.
const DefaultLinesPerChunk = 50

// SchedulerOptions tune how a frame is split up and rendered.
type SchedulerOptions struct {
	// Sub-pixel offsets used for anti-aliasing.
	Pattern SamplePattern

	// Bounce budget for each light path. Defaults to DefaultMaxBounces.
	MaxBounces int

	// Rows of pixels grouped into one unit of work. Defaults to
	// DefaultLinesPerChunk.
	LinesPerChunk int

	// Size of the worker pool. Defaults to runtime.NumCPU().
	Workers int

	// Seed for the per-worker random sources. Zero picks a time-based
	// seed; a fixed value makes renders reproducible per worker count.
	Seed int64
}

// Scheduler partitions frames into row chunks and renders them on a bounded
// worker pool, committing each finished chunk into a shared frame buffer.
type Scheduler struct {
	pattern       SamplePattern
	maxBounces    int
	linesPerChunk int
	workers       int
	seed          int64
}

// NewScheduler validates the options and creates a scheduler.
func NewScheduler(opts SchedulerOptions) (*Scheduler, error) {
	if len(opts.Pattern) == 0 {
		return nil, fmt.Errorf("tracer: scheduler requires a non-empty sample pattern")
	}
	if opts.MaxBounces < 0 {
		return nil, fmt.Errorf("tracer: bounce budget must not be negative, got %d", opts.MaxBounces)
	}
	if opts.MaxBounces == 0 {
		opts.MaxBounces = DefaultMaxBounces
	}
	if opts.LinesPerChunk <= 0 {
		opts.LinesPerChunk = DefaultLinesPerChunk
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Scheduler{
		pattern:       opts.Pattern,
		maxBounces:    opts.MaxBounces,
		linesPerChunk: opts.LinesPerChunk,
		workers:       opts.Workers,
		seed:          opts.Seed,
	}, nil
}

// partitionFrame splits the flattened pixel index range [0, width*height)
// into chunks of width*linesPerChunk pixels plus one remainder chunk, so the
// chunks are an exact non-overlapping cover of the frame.
func partitionFrame(width, height, linesPerChunk int) []Chunk {
	pixels := width * height
	chunkLen := width * linesPerChunk

	chunks := make([]Chunk, 0, pixels/chunkLen+1)
	for start := 0; start < pixels; start += chunkLen {
		count := chunkLen
		if start+count > pixels {
			count = pixels - start
		}
		chunks = append(chunks, Chunk{Start: start, Pixels: count})
	}
	return chunks
}

// RenderFrame renders the world through the viewport into the shared buffer
// and reports per-worker statistics. Chunks are claimed by workers in no
// particular order; each chunk is rendered and converted to the output pixel
// format before the buffer lock is taken for the copy, so the critical
// section is just a memcpy. A buffer write failure aborts the pass.
func (s *Scheduler) RenderFrame(buf *frame.Buffer, vp Viewport, world Object) ([]WorkerStats, error) {
	if world == nil {
		return nil, fmt.Errorf("tracer: no world to render")
	}

	width := buf.Width()
	chunks := partitionFrame(width, buf.Height(), s.linesPerChunk)

	work := make(chan Chunk, len(chunks))
	for _, chunk := range chunks {
		work <- chunk
	}
	close(work)

	stats := make([]WorkerStats, s.workers)
	errs := make(chan error, s.workers)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			src := rand.New(rand.NewSource(s.seed + int64(worker)))
			st := &stats[worker]
			st.Worker = worker

			for chunk := range work {
				start := time.Now()
				if err := s.renderChunk(buf, vp, world, chunk, width, src); err != nil {
					errs <- err
					// Starve the other workers so the pass winds
					// down instead of rendering into a buffer that
					// rejected a write.
					for range work {
					}
					return
				}
				st.Chunks++
				st.Pixels += chunk.Pixels
				st.BusyTime += time.Since(start)
			}
		}(i)
	}
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	return stats, nil
}

// renderChunk computes every pixel of one chunk into a local buffer and then
// commits the finished run with a single locked copy.
func (s *Scheduler) renderChunk(buf *frame.Buffer, vp Viewport, world Object, chunk Chunk, width int, src Source) error {
	out := make([]byte, 0, chunk.Pixels*frame.PixelBytes)

	for i := chunk.Start; i < chunk.Start+chunk.Pixels; i++ {
		x := i % width
		y := i / width
		px := RenderPixel(x, y, vp, world, s.pattern, s.maxBounces, src).RGBA8()
		out = append(out, px.R, px.G, px.B, px.A)
	}

	return buf.SetRegion(chunk.Start, out)
}
