package galaxy

import (
	"math"

	"github.com/litescript/ls-galaxy/internal/astro"
)

// Position returns the planar position of an orbit with semi-axes a, b at
// time t. pertN and pertAmp add the sinusoidal arm perturbation when both
// are positive.
func Position(a, b, theta0, velTheta, tilt, t float64, pertN int, pertAmp float64) (x, y float64) {
	alpha := astro.DegToRad(theta0 + velTheta*t)
	beta := -tilt

	sinA, cosA := math.Sincos(alpha)
	sinB, cosB := math.Sincos(beta)

	x = a*cosA*cosB - b*sinA*sinB
	y = a*cosA*sinB + b*sinA*cosB

	if pertAmp > 0 && pertN > 0 {
		k := alpha * 2 * float64(pertN)
		x += (a / pertAmp) * math.Sin(k)
		y += (a / pertAmp) * math.Cos(k)
	}
	return x, y
}

// Position returns where the particle is at time t.
func (p Particle) Position(t float64, pertN int, pertAmp float64) (x, y float64) {
	return Position(p.A, p.B, p.Theta0, p.VelTheta, p.Tilt, t, pertN, pertAmp)
}

// h2Probe is the semi-major axis offset used to size H2 regions.
const h2Probe = 1000.0

// PointSize returns the rendered point diameter of the particle at time t.
// dustSize scales dust and filaments. H2 regions grow where the orbit is
// locally compressed; the result is never negative.
func (p Particle) PointSize(t float64, pertN int, pertAmp, dustSize float64) float64 {
	var size float64
	switch p.Type {
	case Star:
		size = p.Mag * 4
	case Dust:
		size = p.Mag * 5 * dustSize
	case Filament:
		size = p.Mag * 2 * dustSize
	case H2Glow, H2Core:
		x1, y1 := p.Position(t, pertN, pertAmp)
		x2, y2 := Position(p.A+h2Probe, p.B, p.Theta0, p.VelTheta, p.Tilt, t, pertN, pertAmp)
		size = (h2Probe-math.Hypot(x2-x1, y2-y1))/10 - 50
		if p.Type == H2Core {
			size /= 10
		}
	}
	return max(size, 0)
}

// Opacity returns the peak alpha a population is blended with.
func (t Type) Opacity() float64 {
	switch t {
	case Dust:
		return 0.05
	case Filament:
		return 0.07
	default:
		return 1
	}
}
