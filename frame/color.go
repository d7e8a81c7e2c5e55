package frame

// Color is an unclamped floating point RGBA color. Values may exceed [0,1]
// while samples accumulate; they are only clamped when converting to a
// fixed point pixel format.
type Color struct {
	R, G, B, A float64
}

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// Create a new color.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Add two colors component-wise. The receiver's alpha channel is kept; the
// operand's alpha is discarded. Final pixel alpha is forced to 1 at output
// so the asymmetry never reaches the frame buffer.
func (c Color) Add(c2 Color) Color {
	return Color{c.R + c2.R, c.G + c2.G, c.B + c2.B, c.A}
}

// Scale all color channels by a scalar. Alpha is kept.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Attenuate multiplies two colors element-wise. This is the per-bounce
// energy loss applied by material scattering.
func (c Color) Attenuate(c2 Color) Color {
	return Color{c.R * c2.R, c.G * c2.G, c.B * c2.B, c.A}
}

// Lerp linearly interpolates between two colors.
func Lerp(from, to Color, t float64) Color {
	return from.Scale(1 - t).Add(to.Scale(t))
}

// RGBA8 is a fixed point pixel with 8 bits per channel.
type RGBA8 struct {
	R, G, B, A uint8
}

// PixelBytes is the byte size of one RGBA8 pixel in the frame buffer.
const PixelBytes = 4

// RGBA8 converts the color to a fixed point pixel, clamping each channel
// to [0,1] before scaling to the 8 bit range.
func (c Color) RGBA8() RGBA8 {
	return RGBA8{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

func quantize(value float64) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 255
	}
	return uint8(value * 255.0)
}
