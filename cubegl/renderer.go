package cubegl

// Renderer is a fixed-pipeline software rasterizer for draw-call
// lists. Create it once and reuse it to avoid allocations.
type Renderer struct {
	Wireframe  bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer with a depth buffer sized w*h.
func NewRenderer(w, h int) *Renderer {
	r := &Renderer{
		ClearColor: RGB(0x05, 0x08, 0x12),
	}
	if w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Draw clears the target and rasterizes the draw calls in order.
// Identical inputs produce identical target bytes.
func (r *Renderer) Draw(t Target, calls []DrawCall) {
	if r == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if w*h > len(r.depthBuf) {
		r.depthBuf = make([]float32, w*h)
	}

	t.Clear(r.ClearColor)
	r.clearDepth()

	for i := range calls {
		r.drawOne(t, w, h, &calls[i])
	}
}

func (r *Renderer) drawOne(t Target, w, h int, call *DrawCall) {
	m := call.Mesh
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}

	u := call.U
	mvp := Mat4Mul(u.Perspective, Mat4Mul(u.Camera, u.Transform))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0 := Mat4MulV4(mvp, Vec4{X: v0.X, Y: v0.Y, Z: v0.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.X, Y: v1.Y, Z: v1.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.X, Y: v2.Y, Z: v2.Z, W: 1})

		// Trivial clip: drop the triangle if any vertex sits on or
		// behind the eye plane.
		if p0.W <= 0 || p1.W <= 0 || p2.W <= 0 {
			continue
		}

		ndc0 := clipToNDC(p0)
		ndc1 := clipToNDC(p1)
		ndc2 := clipToNDC(p2)

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		c0 := vertexColor(u, v0)
		c1 := vertexColor(u, v1)
		c2 := vertexColor(u, v2)

		if r.Wireframe {
			drawLine(t, x0, y0, x1, y1, c0)
			drawLine(t, x1, y1, x2, y2, c1)
			drawLine(t, x2, y2, x0, y0, c2)
			continue
		}
		r.fillTriangle(t, w, h,
			x0, y0, ndc0.Z, c0,
			x1, y1, ndc1.Z, c1,
			x2, y2, ndc2.Z, c2)
	}
}

// vertexColor evaluates the carried shader semantics on the CPU:
// hsv2rgb(fract(color), 1, y+0.5) scaled by the fragment shade.
func vertexColor(u Uniforms, v Vec3) Color {
	return HSV(fract(u.Color), 1, v.Y+0.5).Scale(u.Shade)
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) ndcPoint {
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]; map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	// Counter-clockwise faces end up with positive signed area after
	// the screen-space Y flip; everything else is a back face.
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area <= 0 {
		return
	}
	invArea := 1.0 / float32(area)

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
