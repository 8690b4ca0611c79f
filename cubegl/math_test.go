package cubegl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Mat4Translate(V3(1, -2, 3))
	p := Mat4MulV4(m, Vec4{X: 10, Y: 10, Z: 10, W: 1})
	if p.X != 11 || p.Y != 8 || p.Z != 13 || p.W != 1 {
		t.Fatalf("translate gave %+v", p)
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, 20)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulV4(m, Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1})
	const eps = 1e-5
	if math.Abs(float64(p.X)) > eps || math.Abs(float64(p.Y)) > eps || math.Abs(float64(p.Z)) > eps {
		t.Fatalf("eye not at view origin: %+v", p)
	}
}

func TestPerspectiveDepthSign(t *testing.T) {
	m := Mat4Perspective(float32(math.Pi/4), 1, 0.01, 100)
	// A point in front of the camera projects with positive w.
	front := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: -5, W: 1})
	if front.W <= 0 {
		t.Fatalf("front point has w=%v", front.W)
	}
	behind := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: 5, W: 1})
	if behind.W >= 0 {
		t.Fatalf("behind point has w=%v", behind.W)
	}
}

func TestRotateYPreservesY(t *testing.T) {
	m := Mat4RotateY(1.234)
	p := Mat4MulV4(m, Vec4{X: 1, Y: 7, Z: 0, W: 1})
	if p.Y != 7 {
		t.Fatalf("rotateY changed Y: %v", p.Y)
	}
}

func TestNormalizeZero(t *testing.T) {
	if Normalize(Vec3{}) != (Vec3{}) {
		t.Fatalf("normalize of zero vector should be zero")
	}
}
