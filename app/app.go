// Package app wires the benchmark together: it owns the state record,
// maps host input to actions, runs the per-frame step and decides
// what lands in the framebuffer.
package app

import (
	"fmt"

	"cubebench/bench"
	"cubebench/cubegl"
	"cubebench/hal"
	"cubebench/plot"
	"cubebench/scene"
)

type Config struct {
	Manual bool
}

type app struct {
	h  hal.HAL
	fb hal.Framebuffer
	d  *fbDisplay
	r  *cubegl.Renderer

	manual bool
	state  bench.State

	logged    int
	doneShown bool
}

// New builds the per-frame step function for the given host.
func New(h hal.HAL, cfg Config) func(dtMs float64) error {
	a := &app{
		h:      h,
		manual: cfg.Manual,
	}
	if cfg.Manual {
		a.state = bench.NewManualState()
	} else {
		a.state = bench.NewState()
	}

	if disp := h.Display(); disp != nil {
		a.fb = disp.Framebuffer()
	}
	if a.fb != nil {
		a.d = newFBDisplay(a.fb)
		a.r = cubegl.NewRenderer(a.fb.Width(), a.fb.Height())
	}

	if l := h.Logger(); l != nil {
		mode := "sweep"
		if cfg.Manual {
			mode = "manual"
		}
		l.WriteLineString("cubebench: " + mode + " mode")
	}

	return a.step
}

func (a *app) step(dtMs float64) (err error) {
	defer a.recoverStep(&err)

	if a.fb == nil {
		return hal.ErrNoDisplay
	}

	a.handleInput()

	if a.manual {
		a.state = bench.ManualTick(a.state, dtMs)
		a.renderManual()
		return a.fb.Present()
	}

	a.state = bench.Tick(a.state, dtMs)
	a.logProgress()

	frame := bench.ViewOf(a.state)
	if frame.ShowPlot {
		plot.Render(a.d, chartPoints(frame.Results))
	} else {
		a.r.Draw(a.target(), scene.Build(frame.Cubes, frame.Time))
	}
	return a.fb.Present()
}

func (a *app) target() *cubegl.RGBATarget {
	return &cubegl.RGBATarget{
		Buf:    a.fb.Buffer(),
		Stride: a.fb.StrideBytes(),
		W:      a.fb.Width(),
		H:      a.fb.Height(),
	}
}

func (a *app) renderManual() {
	a.r.Draw(a.target(), scene.Build(a.state.Cubes, a.state.Time))
	a.drawHUD()
}

// handleInput drains both event channels every tick. The sweep
// ignores the events; manual mode maps them to actions.
func (a *app) handleInput() {
	in := a.h.Input()
	if in == nil {
		return
	}

	if kbd := in.Keyboard(); kbd != nil {
	keys:
		for {
			select {
			case ev := <-kbd.Events():
				a.handleKey(ev)
			default:
				break keys
			}
		}
	}
	if ptr := in.Pointer(); ptr != nil {
	presses:
		for {
			select {
			case ev := <-ptr.Events():
				a.handlePointer(ev)
			default:
				break presses
			}
		}
	}
}

func (a *app) handleKey(ev hal.KeyEvent) {
	if !a.manual || !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyUp:
		a.state = bench.Apply(a.state, bench.ActionAdd10)
	case hal.KeyDown:
		a.state = bench.Apply(a.state, bench.ActionSub10)
	case hal.KeyRight:
		a.state = bench.Apply(a.state, bench.ActionAdd100)
	case hal.KeyLeft:
		a.state = bench.Apply(a.state, bench.ActionSub100)
	}
	if ev.Rune == 'w' {
		a.r.Wireframe = !a.r.Wireframe
	}
}

func (a *app) handlePointer(ev hal.PointerEvent) {
	if !a.manual || !ev.Press {
		return
	}
	if action, ok := hitButton(ev.X, ev.Y); ok {
		a.state = bench.Apply(a.state, action)
	}
}

func (a *app) logProgress() {
	l := a.h.Logger()
	if l == nil {
		return
	}
	for ; a.logged < len(a.state.Results); a.logged++ {
		s := a.state.Results[a.logged]
		l.WriteLineString(fmt.Sprintf("tier %d: %.1f fps", s.Cubes, s.FPS))
	}
	if bench.Done(a.state) && !a.doneShown {
		a.doneShown = true
		l.WriteLineString(fmt.Sprintf("sweep complete: %d tiers", len(a.state.Results)))
	}
}

func chartPoints(rs []bench.Sample) []plot.Point {
	pts := make([]plot.Point, 0, len(rs))
	for _, s := range rs {
		pts = append(pts, plot.Point{X: float64(s.Cubes), Y: s.FPS})
	}
	return pts
}
