package renderer

import (
	"time"

	"github.com/Boothwhack/ray-tracing/tracer"
)

type WorkerStat struct {
	// Worker index within the pool.
	Worker int

	// Chunks and pixels this worker rendered, and the share of the
	// frame area the pixels represent.
	Chunks       int
	Pixels       int
	FramePercent float64

	// Time spent rendering assigned chunks.
	BusyTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for the entire frame.
	RenderTime time.Duration
}

// collectStats folds the scheduler's per-worker numbers into frame stats.
func collectStats(workerStats []tracer.WorkerStats, framePixels int, renderTime time.Duration) FrameStats {
	stats := FrameStats{
		Workers:    make([]WorkerStat, len(workerStats)),
		RenderTime: renderTime,
	}
	for i, ws := range workerStats {
		stats.Workers[i] = WorkerStat{
			Worker:       ws.Worker,
			Chunks:       ws.Chunks,
			Pixels:       ws.Pixels,
			FramePercent: 100 * float64(ws.Pixels) / float64(framePixels),
			BusyTime:     ws.BusyTime,
		}
	}
	return stats
}
