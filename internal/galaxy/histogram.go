package galaxy

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RadialHistogram bins the semi-major axes of particles of type t into bins
// equal-width rings over [0, maxRadius). It returns the bin edges and counts.
func RadialHistogram(buf Buffer, t Type, bins int, maxRadius float64) (dividers, counts []float64) {
	if bins < 1 || maxRadius <= 0 {
		return nil, nil
	}

	radii := make([]float64, 0, len(buf))
	for i := 1; i < len(buf); i++ {
		if buf[i].Type != t {
			continue
		}
		r := math.Abs(buf[i].A)
		if r < maxRadius {
			radii = append(radii, r)
		}
	}
	sort.Float64s(radii)

	dividers = floats.Span(make([]float64, bins+1), 0, maxRadius)
	counts = make([]float64, bins)
	if len(radii) == 0 {
		return dividers, counts
	}
	counts = stat.Histogram(counts, dividers, radii, nil)
	return dividers, counts
}

// SurfaceDensity converts ring counts to counts per unit area.
func SurfaceDensity(dividers, counts []float64) []float64 {
	out := make([]float64, len(counts))
	for i := range counts {
		r0, r1 := dividers[i], dividers[i+1]
		out[i] = counts[i] / (math.Pi * (r1*r1 - r0*r0))
	}
	return out
}

// PeakRing returns the index of the largest value.
func PeakRing(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	return floats.MaxIdx(values)
}
