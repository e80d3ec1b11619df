// Package cdf builds a sampled cumulative distribution for the radial
// brightness profile of a galaxy and its inverse, used to draw particle radii
// from uniform random numbers.
package cdf

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a query lies outside the table's domain.
var ErrOutOfRange = errors.New("cdf: argument out of range")

// Profile describes the two-piece intensity curve: a de Vaucouleurs style
// bulge inside BulgeRadius and an exponential disc beyond it.
type Profile struct {
	I0          float64 // central intensity
	K           float64 // bulge falloff
	A           float64 // disc scale length
	BulgeRadius float64
}

// Intensity returns the profile brightness at radius x.
func (p Profile) Intensity(x float64) float64 {
	if x < p.BulgeRadius {
		return p.bulge(x)
	}
	return p.disc(x-p.BulgeRadius, p.bulge(p.BulgeRadius))
}

func (p Profile) bulge(x float64) float64 {
	return p.I0 * math.Exp(-p.K*math.Pow(x, 0.25))
}

func (p Profile) disc(x, i0 float64) float64 {
	return i0 * math.Exp(-x/p.A)
}

// Distribution holds the forward (radius → probability) and inverse
// (probability → radius) piecewise-linear tables.
type Distribution struct {
	profile  Profile
	min, max float64

	// forward table, one node per Simpson double step
	x1, y1, m1 []float64

	// inverse table on a uniform probability grid
	x2, y2, m2 []float64
}

// New builds a distribution; see Setup.
func New(p Profile, min, max float64, steps int) (*Distribution, error) {
	d := &Distribution{}
	if err := d.Setup(p, min, max, steps); err != nil {
		return nil, err
	}
	return d, nil
}

// Setup rebuilds both tables for the given profile over [min, max] using
// steps Simpson sub-intervals. An odd step count is rounded up.
func (d *Distribution) Setup(p Profile, min, max float64, steps int) error {
	if steps < 2 {
		return fmt.Errorf("cdf: need at least 2 steps, got %d", steps)
	}
	if !(max > min) {
		return fmt.Errorf("cdf: empty domain [%v, %v]", min, max)
	}
	if p.A <= 0 {
		return fmt.Errorf("cdf: disc scale length must be positive, got %v", p.A)
	}
	if steps%2 != 0 {
		steps++
	}

	d.profile = p
	d.min, d.max = min, max
	d.buildForward(steps)

	total := d.y1[len(d.y1)-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return fmt.Errorf("cdf: profile integrates to %v", total)
	}
	for i := range d.y1 {
		d.y1[i] /= total
		d.m1[i] /= total
	}

	d.buildInverse(steps)
	return nil
}

func (d *Distribution) buildForward(steps int) {
	h := (d.max - d.min) / float64(steps)
	n := steps/2 + 1

	d.x1 = make([]float64, 0, n)
	d.y1 = make([]float64, 0, n)
	d.m1 = make([]float64, 0, n)

	d.x1 = append(d.x1, d.min)
	d.y1 = append(d.y1, 0)

	y := 0.0
	for i := 0; i < steps; i += 2 {
		x0 := d.min + h*float64(i)
		f0 := d.profile.Intensity(x0)
		f1 := d.profile.Intensity(x0 + h)
		f2 := d.profile.Intensity(x0 + 2*h)

		dy := h / 3 * (f0 + 4*f1 + f2)
		y += dy

		d.m1 = append(d.m1, dy/(2*h))
		d.x1 = append(d.x1, d.min+h*float64(i+2))
		d.y1 = append(d.y1, y)
	}
	d.m1 = append(d.m1, 0)
	d.x1[len(d.x1)-1] = d.max

	if len(d.x1) != len(d.y1) || len(d.y1) != len(d.m1) {
		panic(fmt.Sprintf("cdf: forward table mismatch x=%d y=%d m=%d", len(d.x1), len(d.y1), len(d.m1)))
	}
}

func (d *Distribution) buildInverse(steps int) {
	n := steps + 1
	d.x2 = make([]float64, n)
	d.y2 = make([]float64, n)
	d.m2 = make([]float64, n)

	last := len(d.y1) - 1
	k := 0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(steps)
		for k < last-1 && d.y1[k+1] < p {
			k++
		}

		var r float64
		if d.m1[k] > 0 {
			r = d.x1[k] + (p-d.y1[k])/d.m1[k]
		} else if p-d.y1[k] <= d.y1[k+1]-p {
			// flat segment: fall back to the nearest node
			r = d.x1[k]
		} else {
			r = d.x1[k+1]
		}

		d.x2[i] = p
		d.y2[i] = math.Min(math.Max(r, d.min), d.max)
	}
	d.x2[n-1] = 1

	for i := 0; i < n-1; i++ {
		d.m2[i] = (d.y2[i+1] - d.y2[i]) / (d.x2[i+1] - d.x2[i])
	}

	if len(d.x2) != len(d.y2) || len(d.y2) != len(d.m2) {
		panic(fmt.Sprintf("cdf: inverse table mismatch x=%d y=%d m=%d", len(d.x2), len(d.y2), len(d.m2)))
	}
}

// Min returns the lower bound of the value domain.
func (d *Distribution) Min() float64 { return d.min }

// Max returns the upper bound of the value domain.
func (d *Distribution) Max() float64 { return d.max }

// Profile returns the intensity profile the tables were built from.
func (d *Distribution) Profile() Profile { return d.profile }

// ValueFromProbability maps p in [0, 1] to a radius.
func (d *Distribution) ValueFromProbability(p float64) (float64, error) {
	if len(d.x2) == 0 {
		return 0, errors.New("cdf: distribution not set up")
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: probability %v not in [0, 1]", ErrOutOfRange, p)
	}

	h := 1 / float64(len(d.x2)-1)
	i := int(p / h)
	if i >= len(d.x2)-1 {
		return d.y2[len(d.y2)-1], nil
	}

	return d.y2[i] + d.m2[i]*(p-d.x2[i]), nil
}

// ProbabilityFromValue maps a radius in [Min, Max] to its cumulative probability.
func (d *Distribution) ProbabilityFromValue(v float64) (float64, error) {
	if len(d.x1) == 0 {
		return 0, errors.New("cdf: distribution not set up")
	}
	if v < d.min || v > d.max || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: value %v not in [%v, %v]", ErrOutOfRange, v, d.min, d.max)
	}

	h := d.x1[1] - d.x1[0]
	i := int((v - d.min) / h)
	if i >= len(d.x1)-1 {
		return d.y1[len(d.y1)-1], nil
	}

	return d.y1[i] + d.m1[i]*(v-d.x1[i]), nil
}
