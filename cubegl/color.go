package cubegl

import "math"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) Scale(s float32) Color {
	s = Clamp01(s)
	mul := func(ch uint8) uint8 {
		return uint8(float32(ch) * s)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// HSV converts an HSV triple to an RGBA color.
//
// It mirrors the hsv2rgb in the cube shader (the usual K-vector
// formulation), including the fract wrap on hue, so the software
// pipeline and a GPU backend agree on vertex colors.
func HSV(h, s, v float32) Color {
	r := hsvChannel(h + 1)
	g := hsvChannel(h + 2.0/3.0)
	b := hsvChannel(h + 1.0/3.0)

	mix := func(c float32) uint8 {
		ch := v * (1 + s*(c-1))
		return uint8(Clamp01(ch)*255 + 0.5)
	}
	return Color{R: mix(r), G: mix(g), B: mix(b), A: 0xFF}
}

func hsvChannel(x float32) float32 {
	x = fract(x)
	p := float32(math.Abs(float64(x*6 - 3)))
	return Clamp01(p - 1)
}

func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}
