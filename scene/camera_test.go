package scene

import (
	"math"
	"testing"

	"github.com/Boothwhack/ray-tracing/types"
)

func almostEqual(a, b types.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func TestCameraViewportGeometry(t *testing.T) {
	// Eye at origin looking down -Z with a 90 degree FOV on a square
	// output: tan(45) = 1, so the focal rectangle spans 2x2 at the focus
	// distance.
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -3), 90, 0)
	if cam.FocusDistance != 3 {
		t.Fatalf("expected focus distance 3; got %f", cam.FocusDistance)
	}

	vp := cam.Viewport(100, 100)
	if !almostEqual(vp.Horizontal, types.XYZ(6, 0, 0), 1e-9) {
		t.Fatalf("unexpected horizontal span: %v", vp.Horizontal)
	}
	if !almostEqual(vp.Vertical, types.XYZ(0, 6, 0), 1e-9) {
		t.Fatalf("unexpected vertical span: %v", vp.Vertical)
	}
	if !almostEqual(vp.LowerLeftCorner, types.XYZ(-3, -3, -3), 1e-9) {
		t.Fatalf("unexpected lower left corner: %v", vp.LowerLeftCorner)
	}

	// The center of the viewport sits on the focal plane.
	center := vp.LowerLeftCorner.Add(vp.Horizontal.Mul(0.5)).Add(vp.Vertical.Mul(0.5))
	if d := center.Sub(cam.Position).Len(); math.Abs(d-cam.FocusDistance) > 1e-9 {
		t.Fatalf("expected the viewport center at focus distance; got %f", d)
	}
}

func TestCameraViewportAspectRatio(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 90, 0)
	vp := cam.Viewport(200, 100)

	if ratio := vp.Horizontal.Len() / vp.Vertical.Len(); math.Abs(ratio-2.0) > 1e-9 {
		t.Fatalf("expected a 2:1 span ratio; got %f", ratio)
	}
	if vp.ImageWidth != 200 || vp.ImageHeight != 100 {
		t.Fatalf("unexpected image dimensions: %fx%f", vp.ImageWidth, vp.ImageHeight)
	}
}

func TestCameraBasisIsOrthonormal(t *testing.T) {
	cam := NewCamera(types.XYZ(13, 2, 3), types.XYZ(0, 0, 0), 20, 0.1)
	vp := cam.Viewport(64, 64)

	u, v := vp.LensU, vp.LensV
	if math.Abs(u.Len()-1) > 1e-9 || math.Abs(v.Len()-1) > 1e-9 {
		t.Fatalf("expected unit lens basis vectors; got %f and %f", u.Len(), v.Len())
	}
	if dot := u.Dot(v); math.Abs(dot) > 1e-9 {
		t.Fatalf("expected orthogonal lens basis; dot = %f", dot)
	}
	if vp.LensRadius != 0.05 {
		t.Fatalf("expected lens radius of half the aperture; got %f", vp.LensRadius)
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 90, 0)

	cam.Move(Forward, 0.5)
	if !almostEqual(cam.Position, types.XYZ(0, 0, -0.5), 1e-9) {
		t.Fatalf("unexpected position after moving forward: %v", cam.Position)
	}
	if !almostEqual(cam.LookAt, types.XYZ(0, 0, -1.5), 1e-9) {
		t.Fatalf("expected the target to move with the camera: %v", cam.LookAt)
	}

	cam.Move(Right, 2)
	if !almostEqual(cam.Position, types.XYZ(2, 0, -0.5), 1e-9) {
		t.Fatalf("unexpected position after moving right: %v", cam.Position)
	}

	cam.Move(Up, 1)
	if !almostEqual(cam.Position, types.XYZ(2, 1, -0.5), 1e-9) {
		t.Fatalf("unexpected position after moving up: %v", cam.Position)
	}
}

func TestCameraOrbit(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 90, 0)

	// Half a turn of yaw looks the other way.
	cam.Orbit(math.Pi, 0)
	if !almostEqual(cam.LookAt, types.XYZ(0, 0, 1), 1e-9) {
		t.Fatalf("expected the camera to look backwards; got %v", cam.LookAt)
	}
	if cam.Position != (types.XYZ(0, 0, 0)) {
		t.Fatalf("expected the eye to stay put; got %v", cam.Position)
	}

	// Orbiting keeps the target at the same distance.
	cam.Orbit(0.3, -0.2)
	if d := cam.LookAt.Sub(cam.Position).Len(); math.Abs(d-1) > 1e-9 {
		t.Fatalf("expected the view distance to be preserved; got %f", d)
	}
}

func TestCameraOrbitAvoidsPoles(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 90, 0)

	// Pitching straight past the zenith would align the view direction with
	// the up axis and collapse the view basis.
	for i := 0; i < 8; i++ {
		cam.Orbit(0, math.Pi/4)
	}

	dir := cam.LookAt.Sub(cam.Position).Normalize()
	if math.Abs(dir.Dot(cam.Up)) > maxOrbitCos {
		t.Fatalf("expected the view direction to stay off the up axis; got %v", dir)
	}

	vp := cam.Viewport(4, 4)
	if math.IsNaN(vp.Horizontal.Len()) || vp.Horizontal.Len() == 0 {
		t.Fatalf("expected a usable viewport after orbiting; got horizontal %v", vp.Horizontal)
	}
}

func TestCameraComparable(t *testing.T) {
	a := NewCamera(types.XYZ(13, 2, 3), types.XYZ(0, 0, 0), 20, 0.1)
	b := a
	if a != b {
		t.Fatal("expected copied cameras to compare equal")
	}

	b.Move(Forward, 0.05)
	if a == b {
		t.Fatal("expected a moved camera to compare unequal")
	}
}

func TestPrefabRegistry(t *testing.T) {
	list := Prefabs()
	if len(list) == 0 {
		t.Fatal("expected built-in scenes")
	}

	for _, info := range list {
		sc, err := Prefab(info.Name)
		if err != nil {
			t.Fatalf("prefab %q: %v", info.Name, err)
		}
		if sc.World == nil {
			t.Fatalf("prefab %q has no world", info.Name)
		}
		if sc.Camera.FocusDistance <= 0 {
			t.Fatalf("prefab %q has no focus distance", info.Name)
		}
	}

	if _, err := Prefab("missing"); err == nil {
		t.Fatal("expected error for an unknown prefab name")
	}
}
