package bench

import (
	"math"
	"reflect"
	"testing"
)

const frameDt = 16.67

func TestTierAdvancement(t *testing.T) {
	s := NewState()
	for i := 0; i < FramesPerTier; i++ {
		s = Tick(s, frameDt)
	}
	if s.Frames != FramesPerTier {
		t.Fatalf("frames = %d after %d ticks", s.Frames, FramesPerTier)
	}
	if s.Cubes != StartCubes {
		t.Fatalf("cubes advanced early: %d", s.Cubes)
	}
	if len(s.Results) != 0 {
		t.Fatalf("results appended early: %d", len(s.Results))
	}

	window := s.WindowMs
	s = Tick(s, frameDt)
	if s.Cubes != StartCubes+TierStep {
		t.Fatalf("cubes = %d after advance, want %d", s.Cubes, StartCubes+TierStep)
	}
	if s.Frames != 0 || s.WindowMs != 0 {
		t.Fatalf("window not reset: frames=%d windowMs=%v", s.Frames, s.WindowMs)
	}
	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	got := s.Results[0]
	if got.Cubes != StartCubes {
		t.Fatalf("sample tier = %d", got.Cubes)
	}
	want := FramesPerTier / window * 1000
	if got.FPS != want {
		t.Fatalf("fps = %v, want %v", got.FPS, want)
	}
}

func TestTimeAccumulatesEveryTick(t *testing.T) {
	s := NewState()
	s = Tick(s, 500)
	s = Tick(s, 250)
	if math.Abs(s.Time-0.75) > 1e-12 {
		t.Fatalf("time = %v, want 0.75", s.Time)
	}

	// The advancing tick accumulates time too.
	s = State{Cubes: StartCubes, Frames: FramesPerTier, WindowMs: 1000}
	s = Tick(s, 100)
	if s.Time != 0.1 {
		t.Fatalf("time = %v on advancing tick, want 0.1", s.Time)
	}
}

func TestSweepTermination(t *testing.T) {
	s := NewState()
	for i := 0; i < 25000 && !Done(s); i++ {
		s = Tick(s, frameDt)
	}
	if !Done(s) {
		t.Fatalf("sweep never finished")
	}
	if len(s.Results) != 20 {
		t.Fatalf("results = %d, want 20", len(s.Results))
	}
	for i, r := range s.Results {
		want := StartCubes + i*TierStep
		if r.Cubes != want {
			t.Fatalf("results[%d].Cubes = %d, want %d", i, r.Cubes, want)
		}
	}
	if s.Results[len(s.Results)-1].Cubes != MaxCubes {
		t.Fatalf("last tier = %d", s.Results[len(s.Results)-1].Cubes)
	}
}

func TestFirstWindowDivisionByZero(t *testing.T) {
	// A state constructed exactly at the window boundary with nothing
	// accumulated divides 100 frames by 0 ms. The quirk is preserved:
	// the sample is +Inf, not a crash.
	s := State{Cubes: StartCubes, Frames: FramesPerTier}
	s = Tick(s, 0)
	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	if !math.IsInf(s.Results[0].FPS, 1) {
		t.Fatalf("fps = %v, want +Inf", s.Results[0].FPS)
	}
}

func TestTickPure(t *testing.T) {
	s := State{Cubes: StartCubes, Frames: FramesPerTier, WindowMs: 1600}
	a := Tick(s, 5)
	b := Tick(s, 5)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same tick twice gave different states")
	}

	// Diverging continuations must not share result storage.
	c := Tick(a, 7)
	d := Tick(a, 9)
	for i := 0; i < FramesPerTier; i++ {
		c = Tick(c, 16)
		d = Tick(d, 32)
	}
	if len(a.Results) != 1 {
		t.Fatalf("input state's results changed: %d", len(a.Results))
	}
	if c.Results[0] != a.Results[0] || d.Results[0] != a.Results[0] {
		t.Fatalf("shared prefix diverged")
	}
	if c.Results[1] == d.Results[1] {
		t.Fatalf("continuations unexpectedly identical: %+v", c.Results[1])
	}
}
