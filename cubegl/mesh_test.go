package cubegl

import "testing"

func TestUnitCubeShape(t *testing.T) {
	m := UnitCube()
	if len(m.Vertices) != 24 {
		t.Fatalf("vertices = %d, want 24", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Fatalf("indices = %d, want 36", len(m.Indices))
	}
	for i, v := range m.Vertices {
		for _, c := range []float32{v.X, v.Y, v.Z} {
			if c != 0.5 && c != -0.5 {
				t.Fatalf("vertex %d coordinate %v not +-0.5", i, c)
			}
		}
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestUnitCubeWindsOutward(t *testing.T) {
	m := UnitCube()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := Cross(b.Sub(a), c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		// For a cube centered at the origin, a counter-clockwise
		// outward face has its normal pointing away from the center.
		if Dot(n, centroid) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}
