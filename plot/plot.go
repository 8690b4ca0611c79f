// Package plot draws the FPS-versus-cube-count results chart into a
// framebuffer-backed display.
package plot

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Chart geometry. The chart is centered on the canvas; the margins
// reserve room for tick labels (left, bottom) and the title line.
const (
	ChartW       = 800
	ChartH       = 400
	MarginTop    = 20
	MarginRight  = 20
	MarginBottom = 40
	MarginLeft   = 40

	GridStepX = 200
	GridStepY = 5

	xMax = 2000
)

var (
	colorBG    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorPanel = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorGrid  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis  = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorLabel = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorLine  = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
)

var labelFont = &proggy.TinySZ8pt7b

// Point is one chart datum: x = cube count, y = fps.
type Point struct {
	X, Y float64
}

// Render draws the full chart: background, fixed-interval grid, axis
// tick labels, title and the data polyline. Non-finite points are
// skipped, leaving a gap in the line.
func Render(d drivers.Displayer, pts []Point) {
	cw, ch := d.Size()

	x0 := (cw - ChartW) / 2
	y0 := (ch - ChartH) / 2
	fillRect(d, 0, 0, cw, ch, colorBG)

	px0 := x0 + MarginLeft
	py0 := y0 + MarginTop
	pw := int16(ChartW - MarginLeft - MarginRight)
	ph := int16(ChartH - MarginTop - MarginBottom)
	if pw <= 2 || ph <= 2 {
		return
	}
	fillRect(d, px0, py0, pw, ph, colorPanel)

	yMax := yRange(pts)

	drawGrid(d, px0, py0, pw, ph, yMax)
	drawFrame(d, px0, py0, pw, ph)
	drawSeries(d, px0, py0, pw, ph, yMax, pts)

	title := "fps / cubes"
	_, tw := tinyfont.LineWidth(labelFont, title)
	tinyfont.WriteLine(d, labelFont, px0+(pw-int16(tw))/2, py0+ph+24, title, colorLabel)
}

// yRange picks the vertical extent: the largest finite fps rounded up
// to a grid step, never less than one step.
func yRange(pts []Point) float64 {
	max := 0.0
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		if p.Y > max {
			max = p.Y
		}
	}
	yMax := math.Ceil(max/GridStepY) * GridStepY
	if yMax < GridStepY {
		yMax = GridStepY
	}
	return yMax
}

func drawGrid(d drivers.Displayer, px0, py0, pw, ph int16, yMax float64) {
	for gx := 0; gx <= xMax; gx += GridStepX {
		ix := px0 + int16(float64(gx)/xMax*float64(pw-1))
		for y := int16(0); y < ph; y++ {
			d.SetPixel(ix, py0+y, colorGrid)
		}
		label := fmtAxis(float64(gx))
		_, lw := tinyfont.LineWidth(labelFont, label)
		tinyfont.WriteLine(d, labelFont, ix-int16(lw)/2, py0+ph+10, label, colorLabel)
	}
	for gy := 0.0; gy <= yMax; gy += GridStepY {
		iy := py0 + int16((yMax-gy)/yMax*float64(ph-1))
		for x := int16(0); x < pw; x++ {
			d.SetPixel(px0+x, iy, colorGrid)
		}
		label := fmtAxis(gy)
		_, lw := tinyfont.LineWidth(labelFont, label)
		tinyfont.WriteLine(d, labelFont, px0-int16(lw)-3, iy+3, label, colorLabel)
	}
}

func drawFrame(d drivers.Displayer, px0, py0, pw, ph int16) {
	for x := int16(0); x < pw; x++ {
		d.SetPixel(px0+x, py0+ph-1, colorAxis)
	}
	for y := int16(0); y < ph; y++ {
		d.SetPixel(px0, py0+y, colorAxis)
	}
}

func drawSeries(d drivers.Displayer, px0, py0, pw, ph int16, yMax float64, pts []Point) {
	prevOK := false
	var prevX, prevY float64
	clipX := float64(pw - 1)
	clipY := float64(ph - 1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			prevOK = false
			continue
		}

		curX := p.X / xMax * float64(pw-1)
		curY := (yMax - p.Y) / yMax * float64(ph-1)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, clipX, clipY)
			if ok {
				drawLine(d,
					px0+roundInt16(cx0), py0+roundInt16(cy0),
					px0+roundInt16(cx1), py0+roundInt16(cy1),
					colorLine)
			}
		} else if curX >= 0 && curX <= clipX && curY >= 0 && curY <= clipY {
			d.SetPixel(px0+roundInt16(curX), py0+roundInt16(curY), colorLine)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("%.0f", v)
}

// clipLineToRect is Liang-Barsky clipping of a segment to a rect.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampF(x0+u1*dx, xmin, xmax)
	cy0 = clampF(y0+u1*dy, ymin, ymax)
	cx1 = clampF(x0+u2*dx, xmin, xmax)
	cy1 = clampF(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func drawLine(d drivers.Displayer, x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	type filler interface {
		FillRectangle(x, y, width, height int16, c color.RGBA) error
	}
	if f, ok := d.(filler); ok {
		_ = f.FillRectangle(x, y, w, h, c)
		return
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			d.SetPixel(px, py, c)
		}
	}
}
