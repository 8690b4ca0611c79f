package bench

import "testing"

func TestViewOfScenePhase(t *testing.T) {
	s := NewState()
	s.Time = 3.5
	f := ViewOf(s)
	if f.ShowPlot {
		t.Fatalf("fresh sweep should show the scene")
	}
	if f.Cubes != StartCubes || f.Time != 3.5 {
		t.Fatalf("frame = %+v", f)
	}

	s.Cubes = MaxCubes
	if ViewOf(s).ShowPlot {
		t.Fatalf("last tier still renders the scene")
	}
}

func TestViewOfPlotPhase(t *testing.T) {
	s := NewState()
	s.Cubes = MaxCubes + TierStep
	s.Results = []Sample{{Cubes: 100, FPS: 60}, {Cubes: 200, FPS: 55}}
	f := ViewOf(s)
	if !f.ShowPlot {
		t.Fatalf("finished sweep should show the plot")
	}
	if f.Cubes != 0 {
		t.Fatalf("plot frame carries a cube count: %d", f.Cubes)
	}
	if len(f.Results) != 2 || f.Results[0].Cubes != 100 || f.Results[1].Cubes != 200 {
		t.Fatalf("results not in tier order: %+v", f.Results)
	}
}
