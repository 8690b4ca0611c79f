package cubegl

// Mesh is a static indexed triangle mesh. Vertices carry positions
// only; colors come from the shader stage.
type Mesh struct {
	Vertices []Vec3
	Indices  []uint16
}

// UnitCube returns an axis-aligned unit cube centered at the origin:
// 24 vertices (4 per face) and 36 indices (6 faces, 2 triangles each).
// Faces wind counter-clockwise seen from outside, so they survive
// back-face culling.
func UnitCube() *Mesh {
	const p = 0.5
	// Per face: bottom-left, bottom-right, top-right, top-left as seen
	// looking at the face from outside.
	faces := [6][4]Vec3{
		// +Z
		{{-p, -p, p}, {p, -p, p}, {p, p, p}, {-p, p, p}},
		// -Z
		{{p, -p, -p}, {-p, -p, -p}, {-p, p, -p}, {p, p, -p}},
		// +X
		{{p, -p, p}, {p, -p, -p}, {p, p, -p}, {p, p, p}},
		// -X
		{{-p, -p, -p}, {-p, -p, p}, {-p, p, p}, {-p, p, -p}},
		// +Y
		{{-p, p, p}, {p, p, p}, {p, p, -p}, {-p, p, -p}},
		// -Y
		{{-p, -p, -p}, {p, -p, -p}, {p, -p, p}, {-p, -p, p}},
	}

	m := &Mesh{
		Vertices: make([]Vec3, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range faces {
		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices, f[0], f[1], f[2], f[3])
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
