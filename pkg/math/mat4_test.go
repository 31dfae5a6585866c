package math

import (
	"math"
	"testing"
)

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
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := Vec3{1, 2, 3}
	result := m.TransformPoint(p)

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	p := Vec3{1, 2, 3}
	result := m.TransformPoint(p)

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := Vec3{1, 0, 0}                 // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspectiveLH01(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := PerspectiveLH01(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("PerspectiveLH01 should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("PerspectiveLH01 [15] should be 0, got %f", m[15])
	}
	// Element [11] should be +1 for a left-handed projection
	if m[11] != 1 {
		t.Errorf("PerspectiveLH01 [11] should be 1, got %f", m[11])
	}

	// A point on the near plane should project to depth 0,
	// a point on the far plane to depth 1.
	nearP := m.TransformPoint(Vec3{0, 0, near})
	if abs(nearP.Z) > 0.001 {
		t.Errorf("near plane depth: got %f, want 0", nearP.Z)
	}
	farP := m.TransformPoint(Vec3{0, 0, far})
	if abs(farP.Z-1) > 0.001 {
		t.Errorf("far plane depth: got %f, want 1", farP.Z)
	}
}

func TestOrthoLH01(t *testing.T) {
	m := OrthoLH01(20, 10, 1, 101)

	// Center of the near plane maps to (0, 0, 0)
	nearP := m.TransformPoint(Vec3{0, 0, 1})
	if abs(nearP.X) > 0.001 || abs(nearP.Y) > 0.001 || abs(nearP.Z) > 0.001 {
		t.Errorf("ortho near center: got %v, want origin", nearP)
	}

	// Right edge maps to x=1, far plane to z=1
	p := m.TransformPoint(Vec3{10, 5, 101})
	if abs(p.X-1) > 0.001 || abs(p.Y-1) > 0.001 || abs(p.Z-1) > 0.001 {
		t.Errorf("ortho corner: got %v, want (1, 1, 1)", p)
	}
}

func TestLookToLH(t *testing.T) {
	eye := Vec3{0, 0, -5}
	forward := Vec3{0, 0, 1}
	up := Vec3{0, 1, 0}

	m := LookToLH(eye, forward, up)

	if m[15] != 1 {
		t.Errorf("LookToLH [15] should be 1, got %f", m[15])
	}

	// The eye maps to the view-space origin; a point in front of the
	// camera maps to positive view-space Z.
	origin := m.TransformPoint(eye)
	if origin.Length() > 0.001 {
		t.Errorf("eye should map to origin, got %v", origin)
	}
	front := m.TransformPoint(Vec3{0, 0, 0})
	if abs(front.Z-5) > 0.001 {
		t.Errorf("point ahead should have view z=5, got %v", front)
	}
}

func TestLookAtLHMatchesLookTo(t *testing.T) {
	eye := Vec3{3, 4, 5}
	target := Vec3{0, 1, 0}
	up := Vec3{0, 1, 0}

	a := LookAtLH(eye, target, up)
	b := LookToLH(eye, target.Sub(eye), up)
	for i := 0; i < 16; i++ {
		if abs(a[i]-b[i]) > 0.0001 {
			t.Errorf("LookAtLH and LookToLH disagree at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tr := m.Transpose()

	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose should move translation to last row, got %v", tr)
	}
	round := tr.Transpose()
	if round != m {
		t.Error("double transpose should restore the matrix")
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.7)).Mul(Scale(2, 2, 2))
	inv := m.Inverse()
	id := m.Mul(inv)

	want := Identity()
	for i := 0; i < 16; i++ {
		if abs(id[i]-want[i]) > 0.001 {
			t.Errorf("M * inv(M) element %d: got %f, want %f", i, id[i], want[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
