// Package grid computes the visible segments of an infinite, transformed
// reference grid clipped to the viewport.
package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-galaxy/internal/gesture"
)

// countTol absorbs rounding when a line falls exactly on a corner.
const countTol = 1e-9

// MaxLinesPerSide bounds the work for extreme zoom levels.
const MaxLinesPerSide = 4096

// Segment is one clipped grid line in device units.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Thick          bool
}

// Lines holds both line families.
type Lines struct {
	Vertical   []Segment
	Horizontal []Segment
}

// Config holds the grid spacing in world units and the thick line period.
type Config struct {
	VerticalSpacing      float64 // distance between vertical lines
	HorizontalSpacing    float64 // distance between horizontal lines
	VerticalThickEvery   int
	HorizontalThickEvery int
}

// DefaultConfig returns the stock grid.
func DefaultConfig() Config {
	return Config{
		VerticalSpacing:      1400,
		HorizontalSpacing:    1400,
		VerticalThickEvery:   5,
		HorizontalThickEvery: 5,
	}
}

// Clipper recomputes the grid for a transform and viewport.
type Clipper struct {
	cfg Config
}

// NewClipper returns a clipper using cfg.
func NewClipper(cfg Config) *Clipper {
	return &Clipper{cfg: cfg}
}

// Config returns the clipper configuration.
func (c *Clipper) Config() Config { return c.cfg }

// ComputeVisibleLines returns the grid lines visible through vp.
func (c *Clipper) ComputeVisibleLines(s gesture.Snapshot, vp gesture.Viewport) Lines {
	return ComputeVisibleLines(s, vp,
		c.cfg.HorizontalSpacing, c.cfg.VerticalSpacing,
		c.cfg.HorizontalThickEvery, c.cfg.VerticalThickEvery)
}

// ComputeVisibleLines returns the visible segments of the grid whose lines
// pass through the world origin, transformed by s. Spacings are in world
// units and scale with the transform.
func ComputeVisibleLines(s gesture.Snapshot, vp gesture.Viewport, spacingH, spacingV float64, thickEveryH, thickEveryV int) Lines {
	if !vp.Valid() {
		return Lines{}
	}

	cx, cy := vp.Centre()
	at := func(x, y float64) r2.Vec {
		tx, ty := s.Apply(x-cx, y-cy)
		return r2.Vec{X: tx, Y: ty}
	}

	// base cross: C top, D bottom, A left, B right
	c := at(cx, 0)
	d := at(cx, vp.Height)
	a := at(0, cy)
	b := at(vp.Width, cy)

	edges := rect(vp.Width, vp.Height)
	corners := [4]r2.Vec{
		{},
		{X: vp.Width},
		{Y: vp.Height},
		{X: vp.Width, Y: vp.Height},
	}

	scale := s.Scale()
	return Lines{
		Vertical:   family(c, d, b, spacingV*scale, thickEveryV, edges, corners),
		Horizontal: family(a, b, d, spacingH*scale, thickEveryH, edges, corners),
	}
}

// family generates the base line through p0 and p1 and its parallels
// spaced step apart. ref marks the positive side.
func family(p0, p1, ref r2.Vec, step float64, thickEvery int, edges [4]edge, corners [4]r2.Vec) []Segment {
	dir := r2.Sub(p1, p0)
	if r2.Norm(dir) == 0 || !(step > 0) || math.IsInf(step, 0) {
		return nil
	}

	n := r2.Unit(r2.Vec{X: dir.Y, Y: -dir.X})
	if signedDistance(ref, p0, n) < 0 {
		n = r2.Scale(-1, n)
	}

	// split corners by side of the base line
	var maxPos, maxNeg float64
	minPos, minNeg := math.Inf(1), math.Inf(1)
	var nPos, nNeg int
	for _, k := range corners {
		sd := signedDistance(k, p0, n)
		if sd >= 0 {
			nPos++
			maxPos = max(maxPos, sd)
			minPos = min(minPos, sd)
		} else {
			nNeg++
			maxNeg = max(maxNeg, -sd)
			minNeg = min(minNeg, -sd)
		}
	}

	countPos := lineCount(maxPos, step)
	countNeg := lineCount(maxNeg, step)

	// base line off screen: skip the parallels that cannot be visible
	var offPos, offNeg int
	switch {
	case nNeg == 0:
		offPos = lineCount(minPos, step)
	case nPos == 0:
		offNeg = lineCount(minNeg, step)
	}

	segs := make([]Segment, 0, 1+countPos-offPos+countNeg-offNeg)
	if seg, ok := clip(p0, dir, edges); ok {
		seg.Thick = true
		segs = append(segs, seg)
	}
	segs = parallels(segs, p0, dir, n, step, offPos, countPos, thickEvery, edges)
	segs = parallels(segs, p0, dir, r2.Scale(-1, n), step, offNeg, countNeg, thickEvery, edges)
	return segs
}

func parallels(segs []Segment, p0, dir, n r2.Vec, step float64, offset, count, thickEvery int, edges [4]edge) []Segment {
	for i := offset; i < count; i++ {
		p := r2.Add(p0, r2.Scale(float64(i+1)*step, n))
		seg, ok := clip(p, dir, edges)
		if !ok {
			continue
		}
		seg.Thick = thickEvery > 0 && i != 0 && (i-offset+1)%thickEvery == 0
		segs = append(segs, seg)
	}
	return segs
}

func lineCount(dist, step float64) int {
	n := math.Floor(dist/step + countTol)
	if n > MaxLinesPerSide {
		return MaxLinesPerSide
	}
	return int(n)
}

// Flatten returns the segments matching thick as interleaved
// [x1, y1, x2, y2, ...] coordinates, two points per segment.
func Flatten(segs []Segment, thick bool) []float64 {
	out := make([]float64, 0, 4*len(segs))
	for _, s := range segs {
		if s.Thick == thick {
			out = append(out, s.X1, s.Y1, s.X2, s.Y2)
		}
	}
	return out
}
