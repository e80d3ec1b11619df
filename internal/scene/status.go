package scene

import (
	"time"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

// Status is a read-only snapshot of the scene for status bars and
// summaries.
type Status struct {
	Time      float64
	TimeStep  float64
	Paused    bool
	View      gesture.Decomposition
	FitScale  float64 // scale at which the galaxy fills the viewport
	ZoomLevel int
	Viewport  gesture.Viewport

	Counts   map[galaxy.Type]int
	Features galaxy.Features

	Grid         bool
	GridLines    int
	DensityWaves bool
	XRay         bool
	DarkMatter   bool
	Preset       int

	LastRegen time.Duration
	FrameRate float64
	Err       error
}

// Status returns a snapshot of the current scene state.
func (s *Scene) Status() Status {
	view := s.transform.Decompose()
	st := Status{
		Time:         s.totalTime,
		TimeStep:     s.timeStep,
		Paused:       s.paused,
		View:         view,
		FitScale:     s.fitScale(),
		ZoomLevel:    ZoomLevel(view.Scale, true),
		Viewport:     s.vp,
		Counts:       make(map[galaxy.Type]int),
		Features:     s.Features(),
		Grid:         s.showGrid,
		GridLines:    len(s.lines.Vertical) + len(s.lines.Horizontal),
		DensityWaves: s.showWaves,
		XRay:         s.xray,
		DarkMatter:   s.galaxies[0].Params.DarkMatter,
		Preset:       s.preset,
		LastRegen:    s.lastRegen,
		FrameRate:    s.frameRate(),
		Err:          s.lastErr,
	}

	for _, g := range s.galaxies {
		buf := g.Buffer()
		for _, t := range []galaxy.Type{galaxy.Star, galaxy.Dust, galaxy.Filament, galaxy.H2Glow, galaxy.H2Core} {
			st.Counts[t] += buf.Count(t)
		}
	}
	return st
}

// Particles returns the total particle count, sentinels excluded.
func (st Status) Particles() int {
	n := 0
	for _, c := range st.Counts {
		n += c
	}
	return n
}

func (s *Scene) frameRate() float64 {
	if len(s.intervals) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.intervals {
		total += d
	}
	return float64(len(s.intervals)) / total.Seconds()
}
