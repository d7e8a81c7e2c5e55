package renderer

import (
	"errors"
	"testing"

	"github.com/Boothwhack/ray-tracing/frame"
	"github.com/Boothwhack/ray-tracing/scene"
	"github.com/Boothwhack/ray-tracing/tracer"
	"github.com/Boothwhack/ray-tracing/types"
)

func TestNewFrameValidation(t *testing.T) {
	sc, err := scene.Prefab("trio")
	if err != nil {
		t.Fatal(err)
	}

	type spec struct {
		scene    *scene.Scene
		options  Options
		expError error
	}
	specs := []spec{
		{nil, Options{FrameW: 8, FrameH: 8}, ErrSceneNotDefined},
		{&scene.Scene{Camera: sc.Camera}, Options{FrameW: 8, FrameH: 8}, ErrSceneNotDefined},
		{&scene.Scene{World: sc.World}, Options{FrameW: 8, FrameH: 8}, ErrCameraNotDefined},
		{sc, Options{FrameW: 0, FrameH: 8}, ErrInvalidDimensions},
		{sc, Options{FrameW: 8, FrameH: -1}, ErrInvalidDimensions},
	}

	for specIndex, spec := range specs {
		_, err := NewFrame(spec.scene, spec.options)
		if !errors.Is(err, spec.expError) {
			t.Errorf("[spec %d] expected error %v; got %v", specIndex, spec.expError, err)
		}
	}
}

func TestFrameRendererRendersScene(t *testing.T) {
	sc, err := scene.Prefab("trio")
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewFrame(sc, Options{
		FrameW:        32,
		FrameH:        24,
		MaxBounces:    4,
		SamplePattern: tracer.SingleSample,
		LinesPerChunk: 8,
		Workers:       2,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	stats := r.Stats()
	if stats.RenderTime <= 0 {
		t.Error("expected a positive render time")
	}
	var totalPixels int
	var totalPercent float64
	for _, ws := range stats.Workers {
		totalPixels += ws.Pixels
		totalPercent += ws.FramePercent
	}
	if exp := 32 * 24; totalPixels != exp {
		t.Errorf("expected workers to render %d pixels; rendered %d", exp, totalPixels)
	}
	if totalPercent < 99.9 || totalPercent > 100.1 {
		t.Errorf("expected worker frame percentages to sum to 100; got %f", totalPercent)
	}

	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("expected a 32x24 image; got %v", img.Bounds())
	}

	// Opaque output regardless of accumulated alpha.
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("expected opaque pixels; byte %d is %d", i, img.Pix[i])
		}
	}
}

func TestImagePutsSkyAtTop(t *testing.T) {
	// Reddish ground sphere below a camera looking at the horizon; the sky
	// gradient fills the upper half of the view. The exported image must
	// carry the sky in its top rows, not the ground.
	ground, err := tracer.NewSphere(types.XYZ(0, -100.5, -1), 100, tracer.NewLambertian(frame.Color{R: 0.8, G: 0.3, B: 0.2, A: 1}))
	if err != nil {
		t.Fatal(err)
	}
	sc := &scene.Scene{
		Camera: scene.NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 90, 0),
		World:  tracer.List{ground},
	}

	r, err := NewFrame(sc, Options{
		FrameW:        8,
		FrameH:        8,
		MaxBounces:    4,
		SamplePattern: tracer.SingleSample,
		Workers:       1,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}

	top := img.RGBAAt(4, 0)
	bottom := img.RGBAAt(4, 7)
	if top.B <= top.R {
		t.Errorf("expected sky at the image top; got %v", top)
	}
	if bottom.R <= bottom.B {
		t.Errorf("expected ground at the image bottom; got %v", bottom)
	}
}

func TestFrameRendererDefaultsSamplePattern(t *testing.T) {
	sc, err := scene.Prefab("trio")
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewFrame(sc, Options{FrameW: 4, FrameH: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if len(r.options.SamplePattern) != len(tracer.Multisample8x) {
		t.Errorf("expected the 8x sample pattern by default; got %d offsets", len(r.options.SamplePattern))
	}
}
