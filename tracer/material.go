package tracer

import (
	"fmt"
	"math"

	"github.com/Boothwhack/ray-tracing/frame"
	"github.com/Boothwhack/ray-tracing/types"
)

// Material is the scattering law of a surface: given an incoming ray and the
// hit it produced, it yields a per-bounce attenuation color and the scattered
// continuation ray. No material fully absorbs a ray; energy loss is encoded
// only in the attenuation multiplication.
type Material interface {
	Scatter(in Ray, hit Hit, src Source) (frame.Color, Ray)
}

// Reflect mirrors v around the surface normal n.
func Reflect(v, n types.Vec3) types.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// refract bends the unit vector uv through a surface with normal n using the
// given ratio of refractive indices.
func refract(uv, n types.Vec3, ratio float64) types.Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	perp := uv.Add(n.Mul(cosTheta)).Mul(ratio)
	parallel := n.Mul(-math.Sqrt(math.Abs(1.0 - perp.LenSq())))
	return perp.Add(parallel)
}

// Reflectance is Schlick's closed-form approximation of the Fresnel
// reflectance at the given incidence cosine.
func Reflectance(cosTheta, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Albedo frame.Color
}

func NewLambertian(albedo frame.Color) Lambertian {
	return Lambertian{Albedo: albedo}
}

func (m Lambertian) Scatter(in Ray, hit Hit, src Source) (frame.Color, Ray) {
	direction := hit.Normal.Add(RandomUnitVector(src))
	return m.Albedo, NewRay(hit.Point, direction)
}

// Metal reflects incoming rays around the surface normal. Fuzz perturbs the
// reflection inside a sphere of that radius; zero is a perfect mirror.
type Metal struct {
	Albedo frame.Color
	Fuzz   float64
}

func NewMetal(albedo frame.Color, fuzz float64) (Metal, error) {
	if fuzz < 0 || fuzz > 1 {
		return Metal{}, fmt.Errorf("tracer: metal fuzz must be in [0,1], got %g", fuzz)
	}
	return Metal{Albedo: albedo, Fuzz: fuzz}, nil
}

func (m Metal) Scatter(in Ray, hit Hit, src Source) (frame.Color, Ray) {
	reflected := Reflect(in.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(RandomInUnitSphere(src).Mul(m.Fuzz))
	}
	return m.Albedo, NewRay(hit.Point, reflected)
}

// Dielectric is a clear refractive material such as glass. The medium does
// not absorb light, so the attenuation is always opaque white.
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) (Dielectric, error) {
	if refractiveIndex <= 0 {
		return Dielectric{}, fmt.Errorf("tracer: refractive index must be positive, got %g", refractiveIndex)
	}
	return Dielectric{RefractiveIndex: refractiveIndex}, nil
}

func (m Dielectric) Scatter(in Ray, hit Hit, src Source) (frame.Color, Ray) {
	// Entering the medium divides by the index, exiting multiplies.
	ratio := m.RefractiveIndex
	if hit.Face == FrontFace {
		ratio = 1.0 / m.RefractiveIndex
	}

	unitDirection := in.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0

	var direction types.Vec3
	if cannotRefract || Reflectance(cosTheta, ratio) > src.Float64() {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, ratio)
	}

	return frame.White, NewRay(hit.Point, direction)
}
