package cubegl

import (
	"bytes"
	"math"
	"testing"
)

func testDrawCall() DrawCall {
	return DrawCall{
		Mesh: UnitCube(),
		Prog: CubeProgram(),
		U: Uniforms{
			Transform:   Mat4Mul(Mat4RotateY(0.5), Mat4RotateX(0.3)),
			Camera:      Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0)),
			Perspective: Mat4Perspective(float32(math.Pi/4), 1, 0.01, 100),
			Shade:       0.8,
			Color:       0.25,
		},
	}
}

func newTestTarget(w, h int) *RGBATarget {
	return &RGBATarget{Buf: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func TestDrawPaintsSomething(t *testing.T) {
	r := NewRenderer(64, 64)
	tgt := newTestTarget(64, 64)
	r.Draw(tgt, []DrawCall{testDrawCall()})

	clear := r.ClearColor
	painted := 0
	for i := 0; i+3 < len(tgt.Buf); i += 4 {
		if tgt.Buf[i] != clear.R || tgt.Buf[i+1] != clear.G || tgt.Buf[i+2] != clear.B {
			painted++
		}
	}
	if painted == 0 {
		t.Fatalf("cube rendered no pixels")
	}
}

func TestDrawDeterministic(t *testing.T) {
	r1 := NewRenderer(64, 64)
	r2 := NewRenderer(64, 64)
	a := newTestTarget(64, 64)
	b := newTestTarget(64, 64)
	calls := []DrawCall{testDrawCall()}

	r1.Draw(a, calls)
	r2.Draw(b, calls)
	if !bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("identical draws produced different target bytes")
	}

	// Reusing one renderer must not change the output either.
	r1.Draw(b, calls)
	if !bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("renderer reuse changed output")
	}
}

func TestDrawEmptyClearsTarget(t *testing.T) {
	r := NewRenderer(8, 8)
	tgt := newTestTarget(8, 8)
	tgt.Buf[0] = 0xAA
	r.Draw(tgt, nil)
	c := r.ClearColor
	for i := 0; i+3 < len(tgt.Buf); i += 4 {
		if tgt.Buf[i] != c.R || tgt.Buf[i+1] != c.G || tgt.Buf[i+2] != c.B || tgt.Buf[i+3] != c.A {
			t.Fatalf("pixel %d not cleared", i/4)
		}
	}
}

func TestWireframeDiffersFromSolid(t *testing.T) {
	solid := NewRenderer(64, 64)
	wire := NewRenderer(64, 64)
	wire.Wireframe = true

	a := newTestTarget(64, 64)
	b := newTestTarget(64, 64)
	solid.Draw(a, []DrawCall{testDrawCall()})
	wire.Draw(b, []DrawCall{testDrawCall()})
	if bytes.Equal(a.Buf, b.Buf) {
		t.Fatalf("wireframe output identical to solid")
	}
}

func TestRGBATargetClips(t *testing.T) {
	tgt := newTestTarget(4, 4)
	tgt.SetPixel(-1, 0, RGB(1, 2, 3))
	tgt.SetPixel(0, -1, RGB(1, 2, 3))
	tgt.SetPixel(4, 0, RGB(1, 2, 3))
	tgt.SetPixel(0, 4, RGB(1, 2, 3))
	for i, b := range tgt.Buf {
		if b != 0 {
			t.Fatalf("out-of-bounds write landed at byte %d", i)
		}
	}
}
