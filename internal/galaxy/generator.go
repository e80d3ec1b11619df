package galaxy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/litescript/ls-galaxy/internal/cdf"
)

// Filament thread limits.
const (
	filamentMaxLength = 100
	filamentRadialJit = 200 // radius wanders by up to ±filamentRadialJit per step
	filamentAngleJit  = 10  // degrees either side of the thread angle
)

// Generator builds particle populations. It is deterministic for a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a fresh buffer: the black hole sentinel followed by stars,
// dust, filaments and H2 regions, in that order.
func (g *Generator) Generate(p *Params, dist *cdf.Distribution) (Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	size := 1 + p.Stars.Count + p.Dust.Count + p.Filaments.Count*filamentMaxLength/2 + 2*p.H2.Count
	buf := make(Buffer, 0, size)
	buf = append(buf, BlackHole)

	var err error
	if buf, err = g.stars(buf, p, dist); err != nil {
		return nil, err
	}
	if buf, err = g.dust(buf, p, dist); err != nil {
		return nil, err
	}
	buf = g.filaments(buf, p)
	buf = g.h2Regions(buf, p)

	return buf, nil
}

// radius draws from the intensity profile when fromProfile is set, otherwise
// uniformly over the square bounding the galaxy.
func (g *Generator) radius(p *Params, dist *cdf.Distribution, fromProfile bool) (float64, error) {
	if fromProfile {
		r, err := dist.ValueFromProbability(g.rng.Float64())
		if err != nil {
			return 0, fmt.Errorf("galaxy: sampling radius: %w", err)
		}
		return r, nil
	}
	return g.squareRadius(p), nil
}

func (g *Generator) squareRadius(p *Params) float64 {
	x := 2*p.radius*g.rng.Float64() - p.radius
	y := 2*p.radius*g.rng.Float64() - p.radius
	return math.Hypot(x, y)
}

// orbit fills the orbital elements for radius r.
func (g *Generator) orbit(p *Params, r float64, t Type) Particle {
	a := r
	b := r * p.Eccentricity(r)
	return Particle{
		A:        a,
		B:        b,
		Tilt:     p.Tilt(r),
		Theta0:   360 * g.rng.Float64(),
		VelTheta: p.OrbitalVelocity((a + b) / 2),
		Type:     t,
	}
}

func (g *Generator) stars(buf Buffer, p *Params, dist *cdf.Distribution) (Buffer, error) {
	n := p.Stars.Count
	bright := n / 60

	for i := 1; i <= n; i++ {
		r, err := g.radius(p, dist, i%3 == 0)
		if err != nil {
			return nil, err
		}

		s := g.orbit(p, r, Star)
		s.Temp = p.BaseTemperature + r/4.5
		s.Mag = 0.02 + 0.55*g.rng.Float64()
		if i < bright {
			s.Mag *= g.rng.Float64() * 2.8
		}
		s.Mag *= p.GalaxySize * p.Stars.Size

		buf = append(buf, s)
	}
	return buf, nil
}

func (g *Generator) dust(buf Buffer, p *Params, dist *cdf.Distribution) (Buffer, error) {
	for i := 0; i < p.Dust.Count; i++ {
		r, err := g.radius(p, dist, i%2 == 0)
		if err != nil {
			return nil, err
		}

		d := g.orbit(p, r, Dust)
		d.Temp = p.BaseTemperature + r/4.5
		d.Mag = (0.02 + 0.15*g.rng.Float64()) * p.GalaxySize * p.Dust.Size

		buf = append(buf, d)
	}
	return buf, nil
}

func (g *Generator) filaments(buf Buffer, p *Params) Buffer {
	for i := 0; i < p.Filaments.Count; i++ {
		r := g.squareRadius(p)
		theta := 360 * g.rng.Float64()
		mag := 0.1 + 0.05*g.rng.Float64()
		num := int(filamentMaxLength * g.rng.Float64())

		for j := 0; j < num; j++ {
			r += filamentRadialJit - 2*filamentRadialJit*g.rng.Float64()
			r = math.Abs(r)

			f := g.orbit(p, r, Filament)
			f.Theta0 = theta + filamentAngleJit - 2*filamentAngleJit*g.rng.Float64()
			f.Temp = p.BaseTemperature + r/4.5 - 1000
			f.Mag = (mag + 0.025*g.rng.Float64()) * p.GalaxySize * p.Filaments.Size

			buf = append(buf, f)
		}
	}
	return buf
}

func (g *Generator) h2Regions(buf Buffer, p *Params) Buffer {
	for i := 0; i < p.H2.Count; i++ {
		glow := g.orbit(p, g.squareRadius(p), H2Glow)
		glow.Temp = 6000 + 6000*g.rng.Float64() - 3000
		glow.Mag = (0.1 + 0.05*g.rng.Float64()) * p.GalaxySize * p.H2.Size

		core := glow
		core.Type = H2Core

		buf = append(buf, glow, core)
	}
	return buf
}
