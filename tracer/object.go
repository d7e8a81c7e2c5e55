package tracer

import (
	"fmt"
	"math"

	"github.com/Boothwhack/ray-tracing/types"
)

// Object is anything that can be intersected by a ray. The scene is a tree
// of objects: primitive shapes at the leaves, Lists at the branches.
type Object interface {
	// Hit reports the nearest intersection with t in [tMin, tMax], or
	// false when the ray misses.
	Hit(r Ray, tMin, tMax float64) (Hit, bool)
}

// Sphere is the primitive shape: a center, a radius and the material covering
// its surface.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material
}

// NewSphere validates and creates a sphere. The radius must be positive and
// a material is required.
func NewSphere(center types.Vec3, radius float64, material Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("tracer: sphere radius must be positive, got %g", radius)
	}
	if material == nil {
		return nil, fmt.Errorf("tracer: sphere requires a material")
	}
	return &Sphere{Center: center, Radius: radius, Material: material}, nil
}

// Hit solves |O + tD - C|^2 = R^2 for the nearest root inside [tMin, tMax].
// Preferring the smaller root and falling back to the larger one keeps
// cameras inside or behind the sphere working.
func (s *Sphere) Hit(r Ray, tMin, tMax float64) (Hit, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LenSq()
	halfB := oc.Dot(r.Direction)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	hit := Hit{
		T:        root,
		Point:    r.At(root),
		Material: s.Material,
	}
	outward := hit.Point.Sub(s.Center).Mul(1.0 / s.Radius)
	hit.setFaceNormal(r, outward)
	return hit, true
}

// List is an ordered group of objects forming a composition tree. It owns its
// children; the tree has no cycles.
type List []Object

// Hit intersects every child and keeps the hit with the smallest t. An empty
// list never hits. Evaluation order is an implementation detail; ties between
// children are broken arbitrarily.
func (l List) Hit(r Ray, tMin, tMax float64) (Hit, bool) {
	var nearest Hit
	found := false
	closest := tMax

	for _, obj := range l {
		if hit, ok := obj.Hit(r, tMin, closest); ok {
			nearest = hit
			closest = hit.T
			found = true
		}
	}

	return nearest, found
}
