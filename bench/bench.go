// Package bench holds the benchmark state machine. State is a plain
// value threaded through Tick and the action handlers; nothing here
// touches globals or the clock.
package bench

const (
	// MaxCubes is the last tier of the sweep.
	MaxCubes = 2000
	// FramesPerTier is the length of one timing window.
	FramesPerTier = 100
	// TierStep is the cube-count increment between tiers.
	TierStep = 100
	// StartCubes is the first tier of the sweep.
	StartCubes = 100
	// DebounceMs holds the manual-mode timing readout stable.
	DebounceMs = 200
)

// Sample is one completed tier: cube count and its FPS estimate.
// Immutable once appended.
type Sample struct {
	Cubes int
	FPS   float64
}

// State is the whole benchmark record. The zero value is not useful;
// start from NewState or NewManualState.
type State struct {
	// Time is the animation clock in seconds. It accumulates dt/1000
	// on every tick in both modes.
	Time float64
	// Cubes is the current tier (sweep) or the user-chosen count
	// (manual).
	Cubes int
	// Frames counts ticks inside the current timing window.
	Frames int
	// WindowMs accumulates wall time inside the current window.
	WindowMs float64
	// Results collects one Sample per completed tier, in tier order.
	Results []Sample

	// ShownDt is the frame delta currently displayed by the manual
	// readout; SinceShownMs accumulates toward the next refresh.
	ShownDt      float64
	SinceShownMs float64
}

// NewState returns the initial sweep state.
func NewState() State {
	return State{Cubes: StartCubes}
}

// NewManualState returns the initial manual-mode state.
func NewManualState() State {
	return State{Cubes: 1}
}

// Tick advances the sweep by one frame of dt milliseconds.
//
// A window closes when exactly FramesPerTier frames have accumulated;
// the FPS estimate divides the window length recorded by the
// preceding ticks (the closing tick's own dt is not added first).
// A window that closes with WindowMs == 0 yields +Inf; the chart
// skips non-finite samples, so this propagates instead of crashing.
func Tick(s State, dt float64) State {
	s.Time += dt / 1000
	if s.Frames == FramesPerTier && s.Cubes <= MaxCubes {
		fps := FramesPerTier / s.WindowMs * 1000
		s.Results = appendSample(s.Results, Sample{Cubes: s.Cubes, FPS: fps})
		s.Cubes += TierStep
		s.Frames = 0
		s.WindowMs = 0
		return s
	}
	s.WindowMs += dt
	s.Frames++
	return s
}

// appendSample never writes through the input slice's backing array,
// so an old State's Results stays valid after a Tick.
func appendSample(rs []Sample, s Sample) []Sample {
	out := make([]Sample, len(rs), len(rs)+1)
	copy(out, rs)
	return append(out, s)
}

// Done reports whether the sweep has passed its last tier.
func Done(s State) bool {
	return s.Cubes > MaxCubes
}
