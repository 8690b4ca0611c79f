package bench

import "testing"

func TestApplyClampsAtOne(t *testing.T) {
	s := NewManualState()
	if s.Cubes != 1 {
		t.Fatalf("manual start = %d, want 1", s.Cubes)
	}
	s = Apply(s, ActionSub100)
	if s.Cubes != 1 {
		t.Fatalf("clamp failed: %d", s.Cubes)
	}
	s = Apply(s, ActionAdd10)
	if s.Cubes != 11 {
		t.Fatalf("add 10 gave %d", s.Cubes)
	}
	s = Apply(s, ActionAdd100)
	if s.Cubes != 111 {
		t.Fatalf("add 100 gave %d", s.Cubes)
	}
	s = Apply(s, ActionSub10)
	if s.Cubes != 101 {
		t.Fatalf("sub 10 gave %d", s.Cubes)
	}
	s = Apply(s, ActionSub100)
	if s.Cubes != 1 {
		t.Fatalf("sub 100 should clamp: %d", s.Cubes)
	}
}

func TestManualTickDebounce(t *testing.T) {
	s := NewManualState()

	s = ManualTick(s, 100)
	if s.ShownDt != 0 {
		t.Fatalf("readout refreshed after 100ms")
	}
	s = ManualTick(s, 100)
	if s.ShownDt != 100 {
		t.Fatalf("readout not refreshed at 200ms boundary: %v", s.ShownDt)
	}
	if s.SinceShownMs != 0 {
		t.Fatalf("accumulator not reset: %v", s.SinceShownMs)
	}
	s = ManualTick(s, 100)
	if s.ShownDt != 100 {
		t.Fatalf("readout refreshed too early: %v", s.ShownDt)
	}
}

func TestManualTickAccumulatesTime(t *testing.T) {
	s := NewManualState()
	s = ManualTick(s, 1500)
	if s.Time != 1.5 {
		t.Fatalf("time = %v, want 1.5", s.Time)
	}
}
