package tracer

import "github.com/Boothwhack/ray-tracing/types"

// Viewport is the world-space projection rectangle plus lens geometry derived
// from a camera for a specific output size. It is immutable for the duration
// of a render pass; a camera or resolution change produces a new viewport.
type Viewport struct {
	Origin      types.Vec3
	ImageWidth  float64
	ImageHeight float64

	Horizontal      types.Vec3
	Vertical        types.Vec3
	LowerLeftCorner types.Vec3

	LensU      types.Vec3
	LensV      types.Vec3
	LensRadius float64
}

// EmitRay projects a normalized pixel coordinate in [0,1]^2 to a world-space
// ray. With a non-zero lens radius the ray origin is jittered across the lens
// disk while still targeting the same point on the focal plane, which is what
// produces depth-of-field blur away from that plane.
func (vp Viewport) EmitRay(p types.Vec2, src Source) Ray {
	target := vp.LowerLeftCorner.
		Add(vp.Horizontal.Mul(p[0])).
		Add(vp.Vertical.Mul(p[1]))

	if vp.LensRadius <= 0 {
		return NewRay(vp.Origin, target.Sub(vp.Origin))
	}

	rd := RandomInUnitDisk(src).Mul(vp.LensRadius)
	offset := vp.LensU.Mul(rd[0]).Add(vp.LensV.Mul(rd[1]))
	origin := vp.Origin.Add(offset)
	return NewRay(origin, target.Sub(origin))
}
