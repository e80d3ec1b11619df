package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxPointers is the number of concurrently tracked pointers.
const MaxPointers = 2

// Sample is the current position of one pointer.
type Sample struct {
	ID int
	X  float64
	Y  float64
}

type pointer struct {
	id   int
	x, y float64
}

// Transform accumulates gestures into a single affine matrix mapping world
// coordinates to device coordinates. It is not safe for concurrent use; the
// owner funnels input and rendering through one goroutine.
type Transform struct {
	m        mgl64.Mat3
	pointers []pointer
	version  uint64
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{
		m:        mgl64.Ident3(),
		pointers: make([]pointer, 0, MaxPointers),
	}
}

// Version increases on every matrix mutation.
func (t *Transform) Version() uint64 { return t.version }

// Matrix returns a copy of the current matrix.
func (t *Transform) Matrix() mgl64.Mat3 { return t.m }

// SetMatrix replaces the matrix.
func (t *Transform) SetMatrix(m mgl64.Mat3) {
	t.m = m
	t.version++
}

// Reset restores the identity matrix and drops tracked pointers.
func (t *Transform) Reset() {
	t.pointers = t.pointers[:0]
	t.SetMatrix(mgl64.Ident3())
}

// Tracked returns the number of pointers currently tracked.
func (t *Transform) Tracked() int { return len(t.pointers) }

// BeginPointer anchors a pointer that went down at (x, y). A pointer that is
// already tracked is re-anchored; pointers beyond MaxPointers are ignored.
func (t *Transform) BeginPointer(id int, x, y float64) {
	for i := range t.pointers {
		if t.pointers[i].id == id {
			t.pointers[i].x, t.pointers[i].y = x, y
			return
		}
	}
	if len(t.pointers) >= MaxPointers {
		return
	}
	t.pointers = append(t.pointers, pointer{id: id, x: x, y: y})
}

// EndPointer stops tracking a pointer. Releasing the primary promotes the
// secondary.
func (t *Transform) EndPointer(id int) {
	for i := range t.pointers {
		if t.pointers[i].id == id {
			t.pointers = append(t.pointers[:i], t.pointers[i+1:]...)
			return
		}
	}
}

// MovePointer fits the motion of the tracked pointers from their anchors to
// the given samples, post-concatenates it onto the transform and re-anchors.
// Samples for untracked pointers are ignored. It reports whether the matrix
// changed.
func (t *Transform) MovePointer(samples []Sample) bool {
	src := make([]mgl64.Vec2, 0, MaxPointers)
	dst := make([]mgl64.Vec2, 0, MaxPointers)
	matched := make([]int, 0, MaxPointers)

	for i, p := range t.pointers {
		for _, s := range samples {
			if s.ID == p.id {
				src = append(src, mgl64.Vec2{p.x, p.y})
				dst = append(dst, mgl64.Vec2{s.X, s.Y})
				matched = append(matched, i)
				break
			}
		}
	}
	if len(src) == 0 {
		return false
	}

	fit := FitSimilarity(src, dst)
	t.PostConcat(fit)

	for j, i := range matched {
		t.pointers[i].x, t.pointers[i].y = dst[j].X(), dst[j].Y()
	}
	return true
}

// PostConcat applies m after the current transform: M = m * M.
func (t *Transform) PostConcat(m mgl64.Mat3) {
	t.SetMatrix(m.Mul3(t.m))
}

// PostTranslate moves the transformed content by (dx, dy) device units.
func (t *Transform) PostTranslate(dx, dy float64) {
	t.PostConcat(mgl64.Translate2D(dx, dy))
}

// PostScale scales the transformed content by s around the device pivot (px, py).
func (t *Transform) PostScale(s, px, py float64) {
	t.PostConcat(aroundPivot(mgl64.Scale2D(s, s), px, py))
}

// PostRotate rotates the transformed content by deg degrees (clockwise on a
// y-down device) around the device pivot (px, py).
func (t *Transform) PostRotate(deg, px, py float64) {
	t.PostConcat(aroundPivot(mgl64.HomogRotate2D(mgl64.DegToRad(deg)), px, py))
}

func aroundPivot(m mgl64.Mat3, px, py float64) mgl64.Mat3 {
	return mgl64.Translate2D(px, py).Mul3(m).Mul3(mgl64.Translate2D(-px, -py))
}

// Decomposition is the translation, uniform scale and rotation of a transform.
type Decomposition struct {
	Scale float64
	Angle float64 // degrees, clockwise-positive on a y-down device
	TX    float64
	TY    float64
}

// Decompose extracts scale, rotation and translation from the matrix. Any
// residual skew is ignored.
func (t *Transform) Decompose() Decomposition {
	return decompose(t.m)
}

func decompose(m mgl64.Mat3) Decomposition {
	scaleX, skewX, skewY := m.At(0, 0), m.At(0, 1), m.At(1, 0)

	angle := -mgl64.RadToDeg(math.Atan2(skewX, scaleX))
	if angle == 0 {
		angle = 0 // drop negative zero
	}

	return Decomposition{
		Scale: math.Hypot(scaleX, skewY),
		Angle: angle,
		TX:    m.At(0, 2),
		TY:    m.At(1, 2),
	}
}

// Snapshot returns an immutable copy of the current state.
func (t *Transform) Snapshot() Snapshot {
	return NewSnapshot(t.m)
}

// minSpan2 is the smallest squared pointer separation that still defines a
// rotation and scale.
const minSpan2 = 1e-12

// FitSimilarity returns the transform mapping src points onto dst points.
// One point yields a pure translation; two points yield translation, rotation
// and uniform scale. Coincident source or destination points fall back to
// translation so the result is always invertible.
func FitSimilarity(src, dst []mgl64.Vec2) mgl64.Mat3 {
	n := min(len(src), len(dst))
	switch {
	case n == 0:
		return mgl64.Ident3()
	case n == 1:
		d := dst[0].Sub(src[0])
		return mgl64.Translate2D(d.X(), d.Y())
	}

	vs := src[1].Sub(src[0])
	vd := dst[1].Sub(dst[0])
	l2 := vs.Dot(vs)
	if l2 < minSpan2 || vd.Dot(vd) < minSpan2 {
		d := dst[0].Sub(src[0])
		return mgl64.Translate2D(d.X(), d.Y())
	}

	a := vs.Dot(vd) / l2
	b := (vs.X()*vd.Y() - vs.Y()*vd.X()) / l2

	tx := dst[0].X() - (a*src[0].X() - b*src[0].Y())
	ty := dst[0].Y() - (b*src[0].X() + a*src[0].Y())

	return mgl64.Mat3{
		a, b, 0,
		-b, a, 0,
		tx, ty, 1,
	}
}
