package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	got := RotateX(math.Pi / 2).TransformVec3(Vec3{0, 1, 0})
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 1) {
		t.Errorf("RotateX(pi/2) * Y = %v, want (0, 0, 1)", got)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	got := RotateY(math.Pi / 2).TransformVec3(Vec3{0, 0, 1})
	if !approx(got.X, 1) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("RotateY(pi/2) * Z = %v, want (1, 0, 0)", got)
	}
}

func TestEulerXYZeroIsIdentity(t *testing.T) {
	if EulerXY(0, 0) != Identity() {
		t.Error("EulerXY(0, 0) should be identity")
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformVec3(eye)
	if !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("view * eye = %v, want origin", got)
	}

	// The target sits straight ahead on -Z.
	target := view.TransformVec3(Vec3{})
	if !approx(target.Z, -5) {
		t.Errorf("view * target = %v, want z = -5", target)
	}
}

func TestPerspectiveAspect(t *testing.T) {
	p := Perspective(math.Pi/2, 2, 0.1, 100)
	if !approx(p[5], 1) {
		t.Errorf("f = %f, want 1 for 90 degree fov", p[5])
	}
	if !approx(p[0], 0.5) {
		t.Errorf("f/aspect = %f, want 0.5", p[0])
	}
	if p.HasNaN() {
		t.Error("projection should be finite")
	}
}

func TestHasNaN(t *testing.T) {
	p := Perspective(math.Pi/2, 0, 0.1, 100)
	if !p.HasNaN() {
		t.Error("zero aspect should produce a non-finite projection")
	}
}
