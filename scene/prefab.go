package scene

import (
	"math/rand"

	"github.com/Boothwhack/ray-tracing/frame"
	"github.com/Boothwhack/ray-tracing/tracer"
	"github.com/Boothwhack/ray-tracing/types"
)

// coverSeed fixes the sphere field layout so repeated runs show the same
// scene.
const coverSeed = 1984

// Cover builds the classic random sphere field: a large ground sphere, a
// 22x22 grid of small spheres with randomized materials, and three large
// feature spheres in the middle.
func Cover() (*Scene, error) {
	rng := rand.New(rand.NewSource(coverSeed))

	ground, err := tracer.NewSphere(
		types.XYZ(0, -1000, 0),
		1000,
		tracer.NewLambertian(frame.NewColor(0.5, 0.5, 0.5, 1)),
	)
	if err != nil {
		return nil, err
	}
	world := tracer.List{ground}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := types.XYZ(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)
			if center.Sub(types.XYZ(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			material, err := randomMaterial(rng)
			if err != nil {
				return nil, err
			}
			sphere, err := tracer.NewSphere(center, 0.2, material)
			if err != nil {
				return nil, err
			}
			world = append(world, sphere)
		}
	}

	glass, err := tracer.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	shiny, err := tracer.NewMetal(frame.NewColor(0.7, 0.6, 0.5, 1), 0)
	if err != nil {
		return nil, err
	}
	features := []struct {
		center   types.Vec3
		material tracer.Material
	}{
		{types.XYZ(0, 1, 0), glass},
		{types.XYZ(-4, 1, 0), tracer.NewLambertian(frame.NewColor(0.4, 0.2, 0.1, 1))},
		{types.XYZ(4, 1, 0), shiny},
	}
	for _, f := range features {
		sphere, err := tracer.NewSphere(f.center, 1, f.material)
		if err != nil {
			return nil, err
		}
		world = append(world, sphere)
	}

	return &Scene{
		Camera: NewCamera(types.XYZ(13, 2, 3), types.XYZ(0, 0, 0), 20, 0.1),
		World:  world,
	}, nil
}

func randomMaterial(rng *rand.Rand) (tracer.Material, error) {
	choice := rng.Float64()
	switch {
	case choice < 0.8:
		// diffuse with a squared random color to favor muted tones
		albedo := frame.NewColor(
			rng.Float64()*rng.Float64(),
			rng.Float64()*rng.Float64(),
			rng.Float64()*rng.Float64(),
			1,
		)
		return tracer.NewLambertian(albedo), nil
	case choice < 0.95:
		albedo := frame.NewColor(
			0.5+0.5*rng.Float64(),
			0.5+0.5*rng.Float64(),
			0.5+0.5*rng.Float64(),
			1,
		)
		return tracer.NewMetal(albedo, 0.5*rng.Float64())
	default:
		return tracer.NewDielectric(1.5)
	}
}

// Trio builds a small three-sphere demo scene: glass on the left, diffuse in
// the middle, metal on the right.
func Trio() (*Scene, error) {
	ground, err := tracer.NewSphere(
		types.XYZ(0, -100.5, -1),
		100,
		tracer.NewLambertian(frame.NewColor(0.8, 0.8, 0.0, 1)),
	)
	if err != nil {
		return nil, err
	}

	glass, err := tracer.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	left, err := tracer.NewSphere(types.XYZ(-1, 0, -1), 0.5, glass)
	if err != nil {
		return nil, err
	}

	center, err := tracer.NewSphere(
		types.XYZ(0, 0, -1),
		0.5,
		tracer.NewLambertian(frame.NewColor(0.1, 0.2, 0.5, 1)),
	)
	if err != nil {
		return nil, err
	}

	metal, err := tracer.NewMetal(frame.NewColor(0.8, 0.6, 0.2, 1), 0.1)
	if err != nil {
		return nil, err
	}
	right, err := tracer.NewSphere(types.XYZ(1, 0, -1), 0.5, metal)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Camera: NewCamera(types.XYZ(0, 0.5, 2), types.XYZ(0, 0, -1), 45, 0),
		World:  tracer.List{ground, left, center, right},
	}, nil
}
