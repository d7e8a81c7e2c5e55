package tracer

import (
	"math"

	"github.com/Boothwhack/ray-tracing/frame"
	"github.com/Boothwhack/ray-tracing/types"
)

const (
	// DefaultMaxBounces is the default bounce budget for light paths.
	DefaultMaxBounces = 50

	// hitEpsilon keeps scattered rays from re-hitting the surface they
	// left due to floating point error (shadow acne).
	hitEpsilon = 0.001
)

var skyBlue = frame.NewColor(0.5, 0.6, 1.0, 1.0)

// RenderRay evaluates the color carried by a single light path, recursing
// through material scattering until the ray escapes to the background or the
// bounce budget runs out. An exhausted budget contributes no energy.
func RenderRay(r Ray, world Object, bouncesLeft int, src Source) frame.Color {
	if bouncesLeft <= 0 {
		return frame.Black
	}

	if hit, ok := world.Hit(r, hitEpsilon, math.Inf(1)); ok {
		attenuation, scattered := hit.Material.Scatter(r, hit, src)
		return attenuation.Attenuate(RenderRay(scattered, world, bouncesLeft-1, src))
	}

	// Background: vertical gradient from white at the ground up to sky blue.
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection[1] + 1.0)
	return frame.Lerp(frame.White, skyBlue, t)
}

// RenderPixel produces the final color of a single pixel: one light path per
// pattern offset, averaged and gamma adjusted (sqrt approximates gamma 2.0).
// Pixel alpha is forced to fully opaque.
func RenderPixel(x, y int, vp Viewport, world Object, pattern SamplePattern, maxBounces int, src Source) frame.Color {
	sum := frame.Black
	for _, offset := range pattern {
		u := (float64(x) + offset[0]) / (vp.ImageWidth - 1)
		v := (float64(y) + offset[1]) / (vp.ImageHeight - 1)
		ray := vp.EmitRay(types.XY(u, v), src)
		sum = sum.Add(RenderRay(ray, world, maxBounces, src))
	}

	avg := sum.Scale(1.0 / float64(len(pattern)))
	return frame.NewColor(
		math.Sqrt(avg.R),
		math.Sqrt(avg.G),
		math.Sqrt(avg.B),
		1.0,
	)
}
