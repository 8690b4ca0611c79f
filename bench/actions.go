package bench

// Action is a manual-mode cube-count adjustment.
type Action int

const (
	ActionAdd10  Action = 10
	ActionAdd100 Action = 100
	ActionSub10  Action = -10
	ActionSub100 Action = -100
)

// Apply adjusts the cube count by the action's delta, clamped at 1.
// Out-of-range requests are clamped, not rejected.
func Apply(s State, a Action) State {
	s.Cubes += int(a)
	if s.Cubes < 1 {
		s.Cubes = 1
	}
	return s
}

// ManualTick advances the manual-mode state by one frame. The timing
// readout refreshes only once 200 ms of real time has accumulated
// since the last refresh, so the text does not flicker at frame rate.
func ManualTick(s State, dt float64) State {
	s.Time += dt / 1000
	s.SinceShownMs += dt
	if s.SinceShownMs >= DebounceMs {
		s.ShownDt = dt
		s.SinceShownMs = 0
	}
	return s
}
