package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// parallelTol is the relative cross product below which two directions are
// treated as parallel.
const parallelTol = 1e-9

// pointTol merges intersection points closer than this (device units).
const pointTol = 1e-6

// edge is a closed segment q + b*e, b in [0, 1].
type edge struct {
	q, e r2.Vec
}

// rect returns the four viewport edges: top, bottom, left, right.
func rect(w, h float64) [4]edge {
	return [4]edge{
		{q: r2.Vec{}, e: r2.Vec{X: w}},
		{q: r2.Vec{Y: h}, e: r2.Vec{X: w}},
		{q: r2.Vec{}, e: r2.Vec{Y: h}},
		{q: r2.Vec{X: w}, e: r2.Vec{Y: h}},
	}
}

// intersect returns where the infinite line p + a*d crosses the edge.
// Parallel or degenerate input yields false.
func intersect(p, d r2.Vec, ed edge) (r2.Vec, bool) {
	denom := r2.Cross(d, ed.e)
	scale := r2.Norm(d) * r2.Norm(ed.e)
	if scale == 0 || math.Abs(denom) <= parallelTol*scale {
		return r2.Vec{}, false
	}

	w := r2.Sub(ed.q, p)
	b := r2.Cross(w, d) / denom
	if b < -pointTol || b > 1+pointTol {
		return r2.Vec{}, false
	}

	b = min(max(b, 0), 1)
	return r2.Add(ed.q, r2.Scale(b, ed.e)), true
}

// clip intersects the infinite line p + a*d with the viewport rectangle. It
// reports false unless the line crosses the boundary at exactly two distinct
// points.
func clip(p, d r2.Vec, edges [4]edge) (Segment, bool) {
	var pts [4]r2.Vec
	n := 0

next:
	for _, ed := range edges {
		pt, ok := intersect(p, d, ed)
		if !ok {
			continue
		}
		for _, seen := range pts[:n] {
			if r2.Norm(r2.Sub(seen, pt)) < pointTol {
				continue next
			}
		}
		pts[n] = pt
		n++
	}

	if n != 2 {
		return Segment{}, false
	}
	return Segment{X1: pts[0].X, Y1: pts[0].Y, X2: pts[1].X, Y2: pts[1].Y}, true
}

// signedDistance returns the distance of c from the line through p along
// the unit normal n.
func signedDistance(c, p, n r2.Vec) float64 {
	return r2.Dot(r2.Sub(c, p), n)
}
