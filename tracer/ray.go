package tracer

import "github.com/Boothwhack/ray-tracing/types"

// Face identifies which side of a surface a ray struck.
type Face uint8

const (
	// FrontFace means the ray arrived against the outward normal.
	FrontFace Face = iota
	// BackFace means the ray arrived from inside the surface.
	BackFace
)

// Ray is a half-line through the scene. The direction is not required to be
// unit length. Immutable once constructed.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
}

func NewRay(origin, direction types.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At evaluates the parametric point origin + t*direction.
func (r Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit describes a ray-surface intersection. It is a transient value produced
// by intersection tests; the material reference borrows from the scene that
// produced it and must not outlive it.
type Hit struct {
	Point    types.Vec3
	Normal   types.Vec3
	T        float64
	Face     Face
	Material Material
}

// setFaceNormal orients the hit normal against the incoming ray and records
// which face was struck. outward must be unit length and point away from the
// surface interior.
func (h *Hit) setFaceNormal(r Ray, outward types.Vec3) {
	if r.Direction.Dot(outward) < 0 {
		h.Face = FrontFace
		h.Normal = outward
	} else {
		h.Face = BackFace
		h.Normal = outward.Neg()
	}
}
