package renderer

import (
	"image"
	"time"

	"github.com/Boothwhack/ray-tracing/frame"
	"github.com/Boothwhack/ray-tracing/scene"
	"github.com/Boothwhack/ray-tracing/tracer"
)

// FrameRenderer renders single frames of a scene into a shared frame buffer.
// It is the building block for both still-frame export and the interactive
// viewer.
type FrameRenderer struct {
	options   Options
	world     tracer.Object
	camera    scene.Camera
	buffer    *frame.Buffer
	scheduler *tracer.Scheduler
	stats     FrameStats
}

// NewFrame validates the scene and options and creates a frame renderer.
func NewFrame(sc *scene.Scene, opts Options) (*FrameRenderer, error) {
	if sc == nil || sc.World == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera.FOV <= 0 || sc.Camera.FOV >= 180 {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return nil, ErrInvalidDimensions
	}
	if opts.SamplePattern == nil {
		opts.SamplePattern = tracer.Multisample8x
	}

	buffer, err := frame.NewBuffer(opts.FrameW, opts.FrameH)
	if err != nil {
		return nil, err
	}

	scheduler, err := tracer.NewScheduler(tracer.SchedulerOptions{
		Pattern:       opts.SamplePattern,
		MaxBounces:    opts.MaxBounces,
		LinesPerChunk: opts.LinesPerChunk,
		Workers:       opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	return &FrameRenderer{
		options:   opts,
		world:     sc.World,
		camera:    sc.Camera,
		buffer:    buffer,
		scheduler: scheduler,
	}, nil
}

// Render renders one full frame through the scene's camera.
func (r *FrameRenderer) Render() error {
	return r.renderWith(r.camera)
}

// renderWith renders one full frame through a camera snapshot. The snapshot
// and the world are read-only for the duration of the pass; the shared
// buffer is the only thing written.
func (r *FrameRenderer) renderWith(camera scene.Camera) error {
	viewport := camera.Viewport(r.buffer.Width(), r.buffer.Height())

	start := time.Now()
	workerStats, err := r.scheduler.RenderFrame(r.buffer, viewport, r.world)
	if err != nil {
		return err
	}

	r.stats = collectStats(workerStats, r.buffer.Width()*r.buffer.Height(), time.Since(start))
	return nil
}

func (r *FrameRenderer) Close() {}

func (r *FrameRenderer) Stats() FrameStats {
	return r.stats
}

// Buffer exposes the shared output buffer for presentation collaborators.
func (r *FrameRenderer) Buffer() *frame.Buffer {
	return r.buffer
}

// Image copies the current buffer contents into a standard RGBA image, for
// example for PNG export. The buffer stores rows bottom-up (row 0 is the
// lower edge of the view), while image.RGBA expects the top row first, so
// the rows are reversed during the copy.
func (r *FrameRenderer) Image() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.buffer.Width(), r.buffer.Height()))
	if err := r.buffer.Snapshot(img.Pix); err != nil {
		return nil, err
	}

	stride := r.buffer.Width() * frame.PixelBytes
	row := make([]byte, stride)
	for top, bottom := 0, len(img.Pix)-stride; top < bottom; top, bottom = top+stride, bottom-stride {
		copy(row, img.Pix[top:top+stride])
		copy(img.Pix[top:top+stride], img.Pix[bottom:bottom+stride])
		copy(img.Pix[bottom:bottom+stride], row)
	}
	return img, nil
}
