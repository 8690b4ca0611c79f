package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"tinygo.org/x/tinyfont"
)

// recoverStep turns a panicking step into an error after dumping the
// panic onto the framebuffer, so a crash inside the render path leaves
// something readable on screen.
func (a *app) recoverStep(err *error) {
	v := recover()
	if v == nil {
		return
	}

	stack := debug.Stack()
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("cubebench panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	a.drawPanicScreen(v, stack)
	*err = fmt.Errorf("step panic: %v", v)
}

func (a *app) drawPanicScreen(v any, stack []byte) {
	if a.fb == nil || a.d == nil {
		return
	}

	a.fb.ClearRGB(255, 255, 255)

	lines := []string{
		"CubeBench panic:",
		fmt.Sprintf("panic: %v", v),
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	fg := color.RGBA{A: 255}
	const lineHeight = 14
	y := int16(lineHeight)
	maxY := int16(a.fb.Height())
	for _, line := range lines {
		if y >= maxY {
			break
		}
		tinyfont.WriteLine(a.d, hudFont, 4, y, line, fg)
		y += lineHeight
	}
	_ = a.fb.Present()
}
