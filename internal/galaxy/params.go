// Package galaxy models a spiral galaxy as a population of particles on
// tilted elliptical orbits and generates that population from a small set
// of parameters.
package galaxy

import (
	"fmt"

	"github.com/litescript/ls-galaxy/internal/astro"
	"github.com/litescript/ls-galaxy/internal/cdf"
)

// Radial distribution constants.
const (
	ProfileI0    = 1.0  // central intensity
	ProfileK     = 0.02 // bulge falloff
	ProfileSteps = 1000 // Simpson sub-intervals
)

// Category holds the per-population render settings.
type Category struct {
	Show  bool
	Count int
	Size  float64 // size factor
}

// Params is the galaxy level configuration.
type Params struct {
	radius   float64
	farField float64

	CoreRadius        float64
	AngularOffset     float64 // orbit tilt per unit radius, radians
	EccentricityInner float64
	EccentricityOuter float64
	DarkMatter        bool

	PerturbationCount     int
	PerturbationAmplitude float64
	DustRenderSize        float64
	BaseTemperature       float64

	Stars     Category
	Dust      Category
	Filaments Category
	H2        Category

	GalaxySize float64 // global size factor
}

// DefaultParams returns the stock galaxy.
func DefaultParams() Params {
	p := Params{
		CoreRadius:        6000,
		AngularOffset:     0.019,
		EccentricityInner: 0.8,
		EccentricityOuter: 1,
		DarkMatter:        true,
		DustRenderSize:    70,
		BaseTemperature:   4000,
		Stars:             Category{Show: true, Count: 60000, Size: 1},
		Dust:              Category{Show: true, Count: 60000, Size: 1},
		Filaments:         Category{Show: true, Count: 600, Size: 1},
		H2:                Category{Show: true, Count: 400, Size: 1},
		GalaxySize:        1,
	}
	p.SetRadius(15000)
	return p
}

// Radius returns the galaxy radius.
func (p *Params) Radius() float64 { return p.radius }

// FarFieldRadius returns the radius beyond which orbits are circular. It is
// always twice the galaxy radius.
func (p *Params) FarFieldRadius() float64 { return p.farField }

// SetRadius sets the galaxy radius and the derived far field radius.
func (p *Params) SetRadius(r float64) {
	p.radius = r
	p.farField = 2 * r
}

// Validate reports parameter combinations the generator cannot use.
func (p *Params) Validate() error {
	switch {
	case p.radius <= 0:
		return fmt.Errorf("galaxy: radius must be positive, got %v", p.radius)
	case p.CoreRadius < 0:
		return fmt.Errorf("galaxy: core radius must not be negative, got %v", p.CoreRadius)
	case p.CoreRadius > p.radius:
		return fmt.Errorf("galaxy: core radius %v exceeds galaxy radius %v", p.CoreRadius, p.radius)
	case p.Stars.Count < 0, p.Dust.Count < 0, p.Filaments.Count < 0, p.H2.Count < 0:
		return fmt.Errorf("galaxy: particle counts must not be negative")
	}
	return nil
}

// Eccentricity returns the minor/major axis ratio of the orbit at radius r.
func (p *Params) Eccentricity(r float64) float64 {
	switch {
	case r < p.CoreRadius:
		// core region: from 1 at the centre to EccentricityInner
		return 1 + (r/p.CoreRadius)*(p.EccentricityInner-1)
	case r <= p.radius:
		if p.radius == p.CoreRadius {
			return p.EccentricityInner
		}
		return p.EccentricityInner + (r-p.CoreRadius)/(p.radius-p.CoreRadius)*(p.EccentricityOuter-p.EccentricityInner)
	case r < p.farField:
		return p.EccentricityOuter + (r-p.radius)/(p.farField-p.radius)*(1-p.EccentricityOuter)
	default:
		return 1
	}
}

// Tilt returns the orbit tilt angle in radians at radius r.
func (p *Params) Tilt(r float64) float64 {
	return r * p.AngularOffset
}

// OrbitalVelocity returns the angular velocity in degrees per year of an
// orbit with mean radius r.
func (p *Params) OrbitalVelocity(r float64) float64 {
	return astro.AngularVelocity(r, p.DarkMatter)
}

// Profile returns the radial intensity profile of the galaxy.
func (p *Params) Profile() cdf.Profile {
	return cdf.Profile{
		I0:          ProfileI0,
		K:           ProfileK,
		A:           p.radius / 3,
		BulgeRadius: p.CoreRadius,
	}
}

// Distribution builds the radial sampler over [0, FarFieldRadius].
func (p *Params) Distribution() (*cdf.Distribution, error) {
	d, err := cdf.New(p.Profile(), 0, p.farField, ProfileSteps)
	if err != nil {
		return nil, fmt.Errorf("galaxy: building radial distribution: %w", err)
	}
	return d, nil
}

// Features returns the visibility bitmask of the four populations.
func (p *Params) Features() Features {
	var f Features
	if p.Stars.Show {
		f |= FeatureStars
	}
	if p.Dust.Show {
		f |= FeatureDust
	}
	if p.Filaments.Show {
		f |= FeatureFilaments
	}
	if p.H2.Show {
		f |= FeatureH2
	}
	return f
}

// SetFeatures sets the visibility flags from a bitmask.
func (p *Params) SetFeatures(f Features) {
	p.Stars.Show = f&FeatureStars != 0
	p.Dust.Show = f&FeatureDust != 0
	p.Filaments.Show = f&FeatureFilaments != 0
	p.H2.Show = f&FeatureH2 != 0
}
