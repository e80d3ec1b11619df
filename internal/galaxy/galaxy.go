package galaxy

import (
	"github.com/litescript/ls-galaxy/internal/cdf"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

// Galaxy owns a parameter set, its radial distribution and the particle
// buffer generated from them.
type Galaxy struct {
	Params Params

	dist *cdf.Distribution
	buf  Buffer
}

// New returns a galaxy with no particles yet.
func New(p Params) *Galaxy {
	return &Galaxy{Params: p}
}

// Regenerate rebuilds the distribution and the whole particle buffer, then
// normalizes the buffer into render space.
func (g *Galaxy) Regenerate(gen *Generator, s gesture.Snapshot, vp gesture.Viewport) error {
	dist, err := g.Params.Distribution()
	if err != nil {
		return err
	}

	buf, err := gen.Generate(&g.Params, dist)
	if err != nil {
		return err
	}
	buf.Normalize(s, vp)

	g.dist = dist
	g.buf = buf
	return nil
}

// Buffer returns the current particle buffer. Callers must not modify it.
func (g *Galaxy) Buffer() Buffer { return g.buf }

// Distribution returns the radial sampler from the last regeneration.
func (g *Galaxy) Distribution() *cdf.Distribution { return g.dist }
