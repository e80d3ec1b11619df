package gesture

import "github.com/go-gl/mathgl/mgl64"

// Snapshot is an immutable copy of a Transform at one point in time.
type Snapshot struct {
	m mgl64.Mat3
	d Decomposition
}

// Identity is the snapshot of an untouched transform.
var Identity = NewSnapshot(mgl64.Ident3())

// NewSnapshot wraps a matrix.
func NewSnapshot(m mgl64.Mat3) Snapshot {
	return Snapshot{m: m, d: decompose(m)}
}

// Matrix returns the world-to-device matrix.
func (s Snapshot) Matrix() mgl64.Mat3 { return s.m }

// Decompose returns scale, rotation and translation.
func (s Snapshot) Decompose() Decomposition { return s.d }

// Scale returns the uniform scale.
func (s Snapshot) Scale() float64 { return s.d.Scale }

// Apply maps a world point to device coordinates.
func (s Snapshot) Apply(x, y float64) (float64, float64) {
	v := s.m.Mul3x1(mgl64.Vec3{x, y, 1})
	return v.X(), v.Y()
}

// Invert maps a device point back to world coordinates.
func (s Snapshot) Invert(x, y float64) (float64, float64) {
	v := s.m.Inv().Mul3x1(mgl64.Vec3{x, y, 1})
	return v.X(), v.Y()
}

// renderMatrix is the matrix with its translation (column-major 6, 7)
// moved into render space.
func (s Snapshot) renderMatrix(vp Viewport) mgl64.Mat3 {
	m := s.m
	m[6] = vp.NormalizeX(m[6])
	m[7] = vp.NormalizeY(m[7])
	return m
}

// ToRenderSpace converts a device point to render space.
func (s Snapshot) ToRenderSpace(vp Viewport, x, y float64) (float64, float64) {
	v := s.renderMatrix(vp).Inv().Mul3x1(mgl64.Vec3{vp.NormalizeX(x), vp.NormalizeY(y), 1})
	return v.X(), v.Y()
}

// ToRenderSpaceBatch converts interleaved [x0, y0, x1, y1, ...] coordinates
// in place.
func (s Snapshot) ToRenderSpaceBatch(vp Viewport, coords []float64) {
	inv := s.renderMatrix(vp).Inv()
	for i := 0; i+1 < len(coords); i += 2 {
		v := inv.Mul3x1(mgl64.Vec3{vp.NormalizeX(coords[i]), vp.NormalizeY(coords[i+1]), 1})
		coords[i], coords[i+1] = v.X(), v.Y()
	}
}

// FromRenderSpace is the inverse of ToRenderSpace.
func (s Snapshot) FromRenderSpace(vp Viewport, x, y float64) (float64, float64) {
	v := s.renderMatrix(vp).Mul3x1(mgl64.Vec3{x, y, 1})
	return vp.DenormalizeX(v.X()), vp.DenormalizeY(v.Y())
}

// WidthToRenderSpace converts a horizontal extent to render units. When
// scalable is false the current zoom is divided out so the shape keeps its
// on-screen size.
func (s Snapshot) WidthToRenderSpace(vp Viewport, w float64, scalable bool) float64 {
	out := w / vp.Width * Near * vp.Ratio() * 2
	if !scalable && s.d.Scale != 0 {
		out /= s.d.Scale
	}
	return out
}

// HeightToRenderSpace converts a vertical extent to render units.
func (s Snapshot) HeightToRenderSpace(vp Viewport, h float64, scalable bool) float64 {
	out := h / vp.Height * Near * 2
	if !scalable && s.d.Scale != 0 {
		out /= s.d.Scale
	}
	return out
}
