package bench

// Frame is what the host should draw this tick: either the 3D scene
// at the current cube count, or, once the sweep is done, the results
// chart.
type Frame struct {
	ShowPlot bool
	Cubes    int
	Time     float64
	Results  []Sample
}

// ViewOf derives the frame to draw from the state. The phase is not
// stored anywhere; it falls out of the cube count.
func ViewOf(s State) Frame {
	if !Done(s) {
		return Frame{Cubes: s.Cubes, Time: s.Time}
	}
	return Frame{ShowPlot: true, Results: s.Results}
}
