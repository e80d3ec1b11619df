package galaxy

import "github.com/litescript/ls-galaxy/internal/gesture"

// Type tags a particle population.
type Type int

const (
	Star Type = iota
	Dust
	Filament
	H2Glow // wide dim glow of an H2 region
	H2Core // small bright centre of an H2 region
)

var typeNames = [...]string{"star", "dust", "filament", "h2-glow", "h2-core"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Features is the per-population visibility bitmask passed to the renderer.
type Features uint8

const (
	FeatureStars Features = 1 << iota
	FeatureDust
	FeatureFilaments
	FeatureH2

	FeatureAll = FeatureStars | FeatureDust | FeatureFilaments | FeatureH2
)

// Shows reports whether particles of type t are visible.
func (f Features) Shows(t Type) bool {
	switch t {
	case Star:
		return f&FeatureStars != 0
	case Dust:
		return f&FeatureDust != 0
	case Filament:
		return f&FeatureFilaments != 0
	case H2Glow, H2Core:
		return f&FeatureH2 != 0
	}
	return false
}

// Particle is one simulated object on a tilted elliptical orbit.
type Particle struct {
	Theta0   float64 // initial angle, degrees
	VelTheta float64 // angular velocity, degrees per year
	Tilt     float64 // orbit tilt, radians
	A        float64 // semi-major axis
	B        float64 // semi-minor axis
	Temp     float64 // kelvin
	Mag      float64
	Type     Type
}

// BlackHole is the sentinel stored at index 0 of every buffer.
var BlackHole = Particle{Type: Star, Temp: 6000}

// Buffer is the ordered particle population. Index 0 is always BlackHole.
type Buffer []Particle

// Count returns the number of particles of type t, excluding the sentinel.
func (b Buffer) Count(t Type) int {
	n := 0
	for i := 1; i < len(b); i++ {
		if b[i].Type == t {
			n++
		}
	}
	return n
}

// Normalize rewrites every (A, B) pair from device units to render space in
// place.
func (b Buffer) Normalize(s gesture.Snapshot, vp gesture.Viewport) {
	coords := make([]float64, 2*len(b))
	for i, p := range b {
		coords[2*i], coords[2*i+1] = p.A, p.B
	}
	s.ToRenderSpaceBatch(vp, coords)
	for i := range b {
		b[i].A, b[i].B = coords[2*i], coords[2*i+1]
	}
}

// Denormalize is the inverse of Normalize and returns a new buffer.
func (b Buffer) Denormalize(s gesture.Snapshot, vp gesture.Viewport) Buffer {
	out := make(Buffer, len(b))
	copy(out, b)
	for i := range out {
		out[i].A, out[i].B = s.FromRenderSpace(vp, out[i].A, out[i].B)
	}
	return out
}
