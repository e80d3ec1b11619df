// Package render defines the boundary between the galaxy core and whatever
// draws it, and provides Canvas, a terminal rasterizer.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

// Vertex is the per-particle upload record.
type Vertex = galaxy.Vertex

// Layer identifies an uploaded line set.
type Layer int

const (
	LayerHorizontalNormal Layer = iota
	LayerHorizontalThick
	LayerVerticalNormal
	LayerVerticalThick
	LayerDensityWaves

	numLayers
)

var layerNames = [...]string{"h-normal", "h-thick", "v-normal", "v-thick", "density-waves"}

func (l Layer) String() string {
	if l < 0 || l >= numLayers {
		return "unknown"
	}
	return layerNames[l]
}

// World reports whether the layer is in world units and follows the view
// transform. Grid layers are already in device units.
func (l Layer) World() bool { return l == LayerDensityWaves }

// LineBatch is a list of segments sharing one colour: interleaved
// [x1, y1, x2, y2, ...], two points per segment.
type LineBatch struct {
	Points []float64
	Color  colorful.Color
	Alpha  float64
}

// Segments returns the number of segments in the batch.
func (b LineBatch) Segments() int { return len(b.Points) / 4 }

// Uniforms are the per-frame animation inputs.
type Uniforms struct {
	Time                  float64
	PerturbationCount     int
	PerturbationAmplitude float64
	DustSize              float64
	Features              galaxy.Features
}

// Frame is everything needed to draw one frame.
type Frame struct {
	Uniforms     Uniforms
	View         gesture.Snapshot // current world to device transform
	Grid         bool
	DensityWaves bool
	XRay         bool
}

// Renderer uploads and draws particles and lines. Particle vertices carry
// semi-axes normalized to render space with the identity transform for the
// viewport last passed to Resize.
type Renderer interface {
	Resize(vp gesture.Viewport)
	UploadParticles(vs []Vertex)
	UploadLines(layer Layer, batches []LineBatch)
	Draw(f Frame)
}
