// Package report writes plain-text summaries and plots of a generated galaxy
// for the headless modes.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/litescript/ls-galaxy/internal/astro"
	"github.com/litescript/ls-galaxy/internal/galaxy"
)

const ruleWidth = 60

var types = []galaxy.Type{galaxy.Star, galaxy.Dust, galaxy.Filament, galaxy.H2Glow, galaxy.H2Core}

// WriteSummary prints the parameters, the particle counts per type and
// radius statistics of buf, which must hold world units.
func WriteSummary(w io.Writer, p *galaxy.Params, buf galaxy.Buffer, elapsed time.Duration) {
	fmt.Fprintf(w, "Galaxy radius %.0f pc, core %.0f pc, far field %.0f pc\n",
		p.Radius(), p.CoreRadius, p.FarFieldRadius())
	fmt.Fprintf(w, "Eccentricity %.2f → %.2f, angular offset %g, perturbation %d/%g, dark matter %v\n",
		p.EccentricityInner, p.EccentricityOuter, p.AngularOffset,
		p.PerturbationCount, p.PerturbationAmplitude, p.DarkMatter)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "%-10s %8s %10s %10s %10s\n", "Type", "Count", "Mean r", "Std r", "Max r")
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	total := 0
	for _, t := range types {
		radii := Radii(buf, t)
		total += len(radii)
		if len(radii) == 0 {
			fmt.Fprintf(w, "%-10s %8d %10s %10s %10s\n", t, 0, "-", "-", "-")
			continue
		}
		mean, std := stat.MeanStdDev(radii, nil)
		fmt.Fprintf(w, "%-10s %8d %10.0f %10.0f %10.0f\n", t, len(radii), mean, std, floats.Max(radii))
	}

	fmt.Fprintf(w, "\nTotal: %d particles generated in %v\n", total, elapsed)
}

// Radii returns the semi-major axes of the particles of type t.
func Radii(buf galaxy.Buffer, t galaxy.Type) []float64 {
	var out []float64
	for i := 1; i < len(buf); i++ {
		if buf[i].Type == t {
			out = append(out, math.Abs(buf[i].A))
		}
	}
	return out
}

// WriteRotationCurve plots orbital velocity against radius with and without
// the dark matter halo.
func WriteRotationCurve(w io.Writer, maxRadius float64, points, height int) {
	with := astro.RotationCurve(maxRadius, points, true)
	without := astro.RotationCurve(maxRadius, points, false)

	chart := asciigraph.PlotMany([][]float64{with, without},
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("rotation velocity (km/s), 0-%.0f pc: with (green) and without (red) dark matter", maxRadius)),
	)
	fmt.Fprintln(w, chart)
}

// WriteRadialHistogram plots the surface density of stars in rings out to
// maxRadius and marks the peak ring.
func WriteRadialHistogram(w io.Writer, buf galaxy.Buffer, maxRadius float64, bins, height int) {
	dividers, counts := galaxy.RadialHistogram(buf, galaxy.Star, bins, maxRadius)
	if len(counts) == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}
	density := galaxy.SurfaceDensity(dividers, counts)

	// stars per square kiloparsec
	for i := range density {
		density[i] *= 1e6
	}

	chart := asciigraph.Plot(density,
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("star surface density (per kpc²), %d rings over 0-%.0f pc", bins, maxRadius)),
	)
	fmt.Fprintln(w, chart)

	peak := galaxy.PeakRing(density)
	fmt.Fprintf(w, "Peak ring %d: %.0f-%.0f pc\n", peak, dividers[peak], dividers[peak+1])
}

// WriteFrame prints one rasterized frame followed by a status line.
func WriteFrame(w io.Writer, lines []string, status string) {
	for _, l := range lines {
		fmt.Fprintln(w, strings.TrimRight(l, " "))
	}
	fmt.Fprintln(w, status)
}
