package tracer

import (
	"fmt"

	"github.com/Boothwhack/ray-tracing/types"
)

// Source yields uniformly distributed floats in [0, 1). *rand.Rand satisfies
// it; tests substitute fixed sequences.
type Source interface {
	Float64() float64
}

// SamplePattern is a fixed ordered set of sub-pixel offsets in [0,1]x[0,1]
// used for anti-aliasing. The offsets are deterministic; stochastic variation
// comes entirely from lens and material sampling.
type SamplePattern []types.Vec2

// Standard multisample patterns, after the DirectX standard sample positions
// (https://learn.microsoft.com/en-us/windows/win32/api/d3d11/ne-d3d11-d3d11_standard_multisample_quality_levels).
var (
	SingleSample = SamplePattern{types.XY(0.5, 0.5)}

	Multisample2x = SamplePattern{
		types.XY(0.25, 0.75),
		types.XY(0.75, 0.25),
	}

	Multisample4x = SamplePattern{
		types.XY(0.125, 0.375),
		types.XY(0.375, 0.875),
		types.XY(0.625, 0.125),
		types.XY(0.875, 0.625),
	}

	Multisample8x = SamplePattern{
		types.XY(0.0625, 0.5625),
		types.XY(0.1875, 0.1875),
		types.XY(0.3125, 0.8125),
		types.XY(0.4375, 0.3125),
		types.XY(0.5625, 0.6875),
		types.XY(0.6875, 0.0625),
		types.XY(0.8125, 0.4375),
		types.XY(0.9375, 0.9375),
	}
)

// NewSamplePattern validates a custom pattern: it must be non-empty and all
// offsets must lie inside the unit square.
func NewSamplePattern(offsets ...types.Vec2) (SamplePattern, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("tracer: sample pattern must contain at least one offset")
	}
	for i, offset := range offsets {
		if offset[0] < 0 || offset[0] > 1 || offset[1] < 0 || offset[1] > 1 {
			return nil, fmt.Errorf("tracer: sample offset %d (%v) outside [0,1]x[0,1]", i, offset)
		}
	}
	return SamplePattern(offsets), nil
}

// PatternForSamples maps a requested sample count to one of the standard
// patterns.
func PatternForSamples(samples int) (SamplePattern, error) {
	switch samples {
	case 1:
		return SingleSample, nil
	case 2:
		return Multisample2x, nil
	case 4:
		return Multisample4x, nil
	case 8:
		return Multisample8x, nil
	default:
		return nil, fmt.Errorf("tracer: no standard sample pattern with %d samples", samples)
	}
}

// Rejection sampling terminates with probability 1; the iteration cap exists
// only to turn a broken random source into a reported fault instead of a
// hung render. The unit ball fills ~52.4% of its bounding cube, so the
// expected iteration count per sample is below 2.
const maxSampleRetries = 1 << 12

// randomInUnitBall draws a uniformly distributed point inside the unit ball
// by rejection sampling the enclosing cube.
func randomInUnitBall(src Source) (types.Vec3, bool) {
	for i := 0; i < maxSampleRetries; i++ {
		p := types.XYZ(
			2*src.Float64()-1,
			2*src.Float64()-1,
			2*src.Float64()-1,
		)
		if p.LenSq() < 1 {
			return p, true
		}
	}
	return types.Vec3{}, false
}

// RandomUnitVector draws a direction-uniform unit vector by normalizing a
// point sampled inside the unit ball, retrying while the candidate is too
// short to normalize reliably.
func RandomUnitVector(src Source) types.Vec3 {
	for i := 0; i < maxSampleRetries; i++ {
		p, ok := randomInUnitBall(src)
		if !ok {
			break
		}
		if p.LenSq() > 1e-12 {
			return p.Normalize()
		}
	}
	logger.Errorf("rejection sampling exhausted %d iterations; random source is unsound", maxSampleRetries)
	return types.XYZ(0, 0, 1)
}

// RandomInUnitSphere draws a point inside the unit ball, used to fuzz metal
// reflections.
func RandomInUnitSphere(src Source) types.Vec3 {
	p, ok := randomInUnitBall(src)
	if !ok {
		logger.Errorf("rejection sampling exhausted %d iterations; random source is unsound", maxSampleRetries)
		return types.Vec3{}
	}
	return p
}

// RandomInUnitDisk draws a point inside the unit disk on the XY plane by
// rejection sampling the enclosing square, used for lens sampling. The disk
// fills ~78.5% of the square.
func RandomInUnitDisk(src Source) types.Vec3 {
	for i := 0; i < maxSampleRetries; i++ {
		p := types.XYZ(2*src.Float64()-1, 2*src.Float64()-1, 0)
		if p.LenSq() < 1 {
			return p
		}
	}
	logger.Errorf("rejection sampling exhausted %d iterations; random source is unsound", maxSampleRetries)
	return types.Vec3{}
}
