package scene

import (
	"math"

	"github.com/Boothwhack/ray-tracing/tracer"
	"github.com/Boothwhack/ray-tracing/types"
)

// CameraDirection names the axes a camera can be moved along, relative to
// its own view basis.
type CameraDirection uint8

const (
	Forward CameraDirection = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera is a plain value describing the eye: where it sits, what it looks
// at, and its lens. It is comparable with ==, which is what the render
// trigger loop uses to detect that a new frame is needed. The camera itself
// never renders; a Viewport derived from it does.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float64

	// Lens diameter. Zero disables depth of field.
	Aperture float64

	// Distance from the eye to the plane of perfect focus.
	FocusDistance float64
}

// NewCamera creates a camera focused on its look-at target.
func NewCamera(position, lookAt types.Vec3, fov, aperture float64) Camera {
	return Camera{
		Position:      position,
		LookAt:        lookAt,
		Up:            types.XYZ(0, 1, 0),
		FOV:           fov,
		Aperture:      aperture,
		FocusDistance: lookAt.Sub(position).Len(),
	}
}

// basis resolves the camera direction into a right-handed orthonormal view
// basis: u points right, v up, w backwards along the view direction.
func (c Camera) basis() (u, v, w types.Vec3) {
	w = c.Position.Sub(c.LookAt).Normalize()
	u = c.Up.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v, w
}

// Viewport derives the world-space projection rectangle for the given output
// size. The horizontal and vertical spans are scaled by the focus distance so
// the focal plane sits exactly at that distance from the eye.
func (c Camera) Viewport(width, height int) tracer.Viewport {
	imageWidth := float64(width)
	imageHeight := float64(height)
	aspectRatio := imageWidth / imageHeight

	theta := c.FOV * math.Pi / 180
	h := math.Tan(theta / 2)
	verticalSpan := 2 * h
	horizontalSpan := verticalSpan * aspectRatio

	u, v, w := c.basis()
	horizontal := u.Mul(horizontalSpan * c.FocusDistance)
	vertical := v.Mul(verticalSpan * c.FocusDistance)
	depth := w.Mul(-c.FocusDistance)

	lowerLeftCorner := c.Position.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Add(depth)

	return tracer.Viewport{
		Origin:          c.Position,
		ImageWidth:      imageWidth,
		ImageHeight:     imageHeight,
		Horizontal:      horizontal,
		Vertical:        vertical,
		LowerLeftCorner: lowerLeftCorner,
		LensU:           u,
		LensV:           v,
		LensRadius:      c.Aperture / 2,
	}
}

// Move translates the camera and its look-at target together along the view
// basis, keeping the orientation fixed.
func (c *Camera) Move(direction CameraDirection, distance float64) {
	u, v, w := c.basis()

	var offset types.Vec3
	switch direction {
	case Forward:
		offset = w.Mul(-distance)
	case Backward:
		offset = w.Mul(distance)
	case Left:
		offset = u.Mul(-distance)
	case Right:
		offset = u.Mul(distance)
	case Up:
		offset = v.Mul(distance)
	case Down:
		offset = v.Mul(-distance)
	default:
		return
	}

	c.Position = c.Position.Add(offset)
	c.LookAt = c.LookAt.Add(offset)
}

// maxOrbitCos keeps the view direction off the up axis, where the view
// basis degenerates.
const maxOrbitCos = 0.999

// Orbit rotates the view direction around the eye by yaw (around the up
// axis) and pitch (around the camera's right axis), then re-aims the look-at
// target one view-direction length away. Pitch that would push the view
// direction onto the up axis is discarded, keeping only the yaw component.
func (c *Camera) Orbit(yaw, pitch float64) {
	u, _, _ := c.basis()
	dir := c.LookAt.Sub(c.Position)
	up := c.Up.Normalize()

	yawQuat := types.QuatFromAxisAngle(up, yaw)
	pitchQuat := types.QuatFromAxisAngle(u, pitch)
	rotated := yawQuat.Mul(pitchQuat).Normalize().Rotate(dir)
	if math.Abs(rotated.Normalize().Dot(up)) > maxOrbitCos {
		rotated = yawQuat.Rotate(dir)
	}

	c.LookAt = c.Position.Add(rotated)
}

// Refocus places the focal plane on the look-at target.
func (c *Camera) Refocus() {
	c.FocusDistance = c.LookAt.Sub(c.Position).Len()
}
