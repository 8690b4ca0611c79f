package app

import (
	"fmt"
	"image/color"

	"cubebench/bench"
	"cubebench/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var hudFont = &freemono.Regular9pt7b

var (
	hudText     = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim      = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	hudButtonBG = color.RGBA{R: 0x22, G: 0x2A, B: 0x3A, A: 0xFF}
)

type button struct {
	x, y, w, h int
	label      string
	action     bench.Action
}

var buttons = []button{
	{x: 10, y: 10, w: 90, h: 28, label: "+10", action: bench.ActionAdd10},
	{x: 110, y: 10, w: 90, h: 28, label: "+100", action: bench.ActionAdd100},
	{x: 210, y: 10, w: 90, h: 28, label: "-10", action: bench.ActionSub10},
	{x: 310, y: 10, w: 90, h: 28, label: "-100", action: bench.ActionSub100},
}

func hitButton(x, y int) (bench.Action, bool) {
	for _, b := range buttons {
		if x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h {
			return b.action, true
		}
	}
	return 0, false
}

// drawHUD paints the manual-mode buttons and the debounced timing
// readout over the rendered scene.
func (a *app) drawHUD() {
	for _, b := range buttons {
		_ = a.d.FillRectangle(int16(b.x), int16(b.y), int16(b.w), int16(b.h), hudButtonBG)
		_, lw := tinyfont.LineWidth(hudFont, b.label)
		lx := int16(b.x) + (int16(b.w)-int16(lw))/2
		ly := int16(b.y) + int16(b.h)/2 + 5
		tinyfont.WriteLine(a.d, hudFont, lx, ly, b.label, hudText)
	}

	fps := 0.0
	if a.state.ShownDt > 0 {
		fps = 1000 / a.state.ShownDt
	}
	readout := fmt.Sprintf("cubes: %d  dt: %.1f ms  fps: %.1f", a.state.Cubes, a.state.ShownDt, fps)
	tinyfont.WriteLine(a.d, hudFont, 10, 62, readout, hudText)
	tinyfont.WriteLine(a.d, hudFont, 10, 80, "arrows adjust   w wireframe", hudDim)
}

// fbDisplay adapts the RGBA framebuffer to drivers.Displayer so
// tinyfont can draw into it.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*4
			if off < 0 || off+3 >= len(buf) {
				continue
			}
			buf[off] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = 0xFF
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
