package types

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	type spec struct {
		op  string
		in  Vec3
		arg Vec3
		exp Vec3
	}
	specs := []spec{
		{"add", XYZ(1, 2, 3), XYZ(4, 5, 6), XYZ(5, 7, 9)},
		{"sub", XYZ(1, 2, 3), XYZ(4, 5, 6), XYZ(-3, -3, -3)},
		{"cross", XYZ(1, 0, 0), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{"cross", XYZ(0, 1, 0), XYZ(1, 0, 0), XYZ(0, 0, -1)},
	}

	for index, s := range specs {
		var out Vec3
		switch s.op {
		case "add":
			out = s.in.Add(s.arg)
		case "sub":
			out = s.in.Sub(s.arg)
		case "cross":
			out = s.in.Cross(s.arg)
		}
		if out != s.exp {
			t.Fatalf("[spec %d] expected %s to yield %v; got %v", index, s.op, s.exp, out)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	v := XYZ(3, 0, 4).Normalize()
	if math.Abs(v.Len()-1.0) > 1e-12 {
		t.Fatalf("expected unit length; got %f", v.Len())
	}
	if exp := XYZ(0.6, 0, 0.8); v != exp {
		t.Fatalf("expected %v; got %v", exp, v)
	}

	// Degenerate input collapses to the zero vector instead of producing Inf.
	if out := (Vec3{}).Normalize(); out != (Vec3{}) {
		t.Fatalf("expected zero vector; got %v", out)
	}
}

func TestQuatRotate(t *testing.T) {
	// Quarter turn around Y maps +X onto -Z.
	q := QuatFromAxisAngle(XYZ(0, 1, 0), math.Pi/2)
	out := q.Rotate(XYZ(1, 0, 0))
	exp := XYZ(0, 0, -1)
	if out.Sub(exp).Len() > 1e-12 {
		t.Fatalf("expected %v; got %v", exp, out)
	}
}

func TestQuatMulNormalize(t *testing.T) {
	yaw := QuatFromAxisAngle(XYZ(0, 1, 0), 0.3)
	pitch := QuatFromAxisAngle(XYZ(1, 0, 0), -0.2)
	q := yaw.Mul(pitch).Normalize()
	if math.Abs(q.Len()-1.0) > 1e-12 {
		t.Fatalf("expected unit quaternion; got length %f", q.Len())
	}
}
