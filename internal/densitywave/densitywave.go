// Package densitywave builds the density-wave overlay: the family of tilted
// ellipses that particle orbits follow, plus reference circles at the core,
// galaxy and far-field radii.
package densitywave

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/render"
)

const (
	Rings = 100 // ellipses between the centre and the far field
	Steps = 100 // segments per ellipse

	ringAlpha   = 0.4
	circleAlpha = 0.8
)

var (
	ringColor     = colorful.Color{R: 1, G: 1, B: 1}
	coreColor     = colorful.Color{R: 1, G: 1, B: 0}
	radiusColor   = colorful.Color{R: 0, G: 1, B: 0}
	farFieldColor = colorful.Color{R: 1, G: 0, B: 0}
)

// Build returns the overlay in world units. The first batch holds every
// ellipse; the reference circles follow in core, radius, far-field order.
func Build(p *galaxy.Params) []render.LineBatch {
	far := p.FarFieldRadius()
	pertN, pertAmp := 0, 0.0
	if p.PerturbationCount > 0 && p.PerturbationAmplitude > 0 {
		pertN, pertAmp = p.PerturbationCount, p.PerturbationAmplitude
	}

	rings := make([]float64, 0, Rings*Steps*4)
	for i := range Rings {
		r := far / Rings * float64(i+1)
		rings = ellipse(rings, r, r*p.Eccentricity(r), p.Tilt(r), pertN, pertAmp)
	}

	return []render.LineBatch{
		{Points: rings, Color: ringColor, Alpha: ringAlpha},
		{Points: ellipse(nil, p.CoreRadius, p.CoreRadius, 0, 0, 0), Color: coreColor, Alpha: circleAlpha},
		{Points: ellipse(nil, p.Radius(), p.Radius(), 0, 0, 0), Color: radiusColor, Alpha: circleAlpha},
		{Points: ellipse(nil, far, far, 0, 0, 0), Color: farFieldColor, Alpha: circleAlpha},
	}
}

// ellipse appends Steps segments tracing one closed orbit at t = 0.
func ellipse(dst []float64, a, b, tilt float64, pertN int, pertAmp float64) []float64 {
	const step = 360.0 / Steps

	px, py := galaxy.Position(a, b, 0, 0, tilt, 0, pertN, pertAmp)
	for i := 1; i <= Steps; i++ {
		x, y := galaxy.Position(a, b, step*float64(i), 0, tilt, 0, pertN, pertAmp)
		dst = append(dst, px, py, x, y)
		px, py = x, y
	}
	return dst
}
