package render

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

// upload normalizes world particles the way a regeneration does and hands
// them to the canvas.
func upload(c *Canvas, ps ...galaxy.Particle) {
	buf := append(galaxy.Buffer{galaxy.BlackHole}, ps...)
	buf.Normalize(gesture.Identity, c.Viewport())
	c.UploadParticles(buf.Vertices())
}

func litCells(lines []string) int {
	n := 0
	for _, l := range lines {
		for _, r := range l {
			if r != ' ' {
				n++
			}
		}
	}
	return n
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(40, 10)
	cols, rows := c.Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 10, rows)
	assert.Equal(t, gesture.Viewport{Width: 40, Height: 20}, c.Viewport())

	c.Draw(Frame{View: gesture.Identity})
	lines := c.Lines()
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, strings.Repeat(" ", 40), l)
	}
}

func TestCanvasDecodesWorldUnits(t *testing.T) {
	c := NewCanvas(40, 10)
	upload(c, galaxy.Particle{A: 12.5, B: 12.5, Temp: 6000, Mag: 1, Type: galaxy.Star})
	require.Equal(t, 1, c.Particles())

	c.Draw(Frame{View: gesture.Identity, Uniforms: Uniforms{Features: galaxy.FeatureAll}})
	lines := c.Lines()

	// theta0 0 and no tilt puts the particle at (A, 0): column 12, row 0
	assert.NotEqual(t, ' ', []rune(lines[0])[12])
	assert.Equal(t, 1, litCells(lines))
}

func TestCanvasFeatureMask(t *testing.T) {
	c := NewCanvas(40, 10)
	upload(c,
		galaxy.Particle{A: 5.5, B: 5.5, Temp: 6000, Mag: 1, Type: galaxy.Star},
		galaxy.Particle{A: 20.5, B: 20.5, Temp: 6000, Mag: 1, Type: galaxy.Dust},
	)

	c.Draw(Frame{View: gesture.Identity, Uniforms: Uniforms{Features: galaxy.FeatureStars, DustSize: 1}})
	assert.Equal(t, 1, litCells(c.Lines()))

	c.Draw(Frame{View: gesture.Identity, Uniforms: Uniforms{Features: 0, DustSize: 1}})
	assert.Equal(t, 0, litCells(c.Lines()))
}

func TestCanvasFollowsView(t *testing.T) {
	c := NewCanvas(40, 10)
	upload(c, galaxy.Particle{A: 2.5, B: 2.5, Temp: 6000, Mag: 1, Type: galaxy.Star})

	tr := gesture.NewTransform()
	tr.PostTranslate(20, 10)
	c.Draw(Frame{View: tr.Snapshot(), Uniforms: Uniforms{Features: galaxy.FeatureAll}})

	// world (2.5, 0) lands on device (22.5, 10): column 22, row 5
	assert.NotEqual(t, ' ', []rune(c.Lines()[5])[22])
}

func TestCanvasAdditiveBrightens(t *testing.T) {
	dim := NewCanvas(10, 2)
	upload(dim, galaxy.Particle{A: 3.5, B: 3.5, Temp: 6000, Mag: 0.1, Type: galaxy.Star})
	dim.Draw(Frame{View: gesture.Identity, Uniforms: Uniforms{Features: galaxy.FeatureAll}})

	bright := NewCanvas(10, 2)
	var ps []galaxy.Particle
	for range 20 {
		ps = append(ps, galaxy.Particle{A: 3.5, B: 3.5, Temp: 6000, Mag: 0.1, Type: galaxy.Star})
	}
	upload(bright, ps...)
	bright.Draw(Frame{View: gesture.Identity, Uniforms: Uniforms{Features: galaxy.FeatureAll}})

	a := strings.IndexRune(string(ramp), []rune(dim.Lines()[0])[3])
	b := strings.IndexRune(string(ramp), []rune(bright.Lines()[0])[3])
	assert.Greater(t, b, a)

	// x-ray blending saturates at the particle colour instead of summing
	bright.Draw(Frame{View: gesture.Identity, XRay: true, Uniforms: Uniforms{Features: galaxy.FeatureAll}})
	x := strings.IndexRune(string(ramp), []rune(bright.Lines()[0])[3])
	assert.LessOrEqual(t, x, b)
}

func TestCanvasGridLayers(t *testing.T) {
	c := NewCanvas(20, 5)
	c.UploadLines(LayerVerticalNormal, []LineBatch{{Points: []float64{4, 0, 4, 10}}})
	c.UploadLines(LayerHorizontalThick, []LineBatch{{Points: []float64{0, 4, 20, 4}}})

	c.Draw(Frame{View: gesture.Identity})
	assert.Equal(t, 0, litCells(c.Lines()), "grid hidden")

	c.Draw(Frame{View: gesture.Identity, Grid: true})
	lines := c.Lines()
	for y := range 5 {
		assert.Equal(t, gridGlyph, []rune(lines[y])[4])
	}
	assert.Equal(t, strings.Repeat(string(gridGlyph), 20), lines[2])
}

func TestCanvasDensityWavesFollowView(t *testing.T) {
	c := NewCanvas(20, 5)
	c.UploadLines(LayerDensityWaves, []LineBatch{{
		Points: []float64{0, 0, 0, 2},
		Color:  colorful.Color{R: 1, G: 1, B: 1},
		Alpha:  0.4,
	}})

	tr := gesture.NewTransform()
	tr.SetMatrix(mgl64.Translate2D(7, 0))
	c.Draw(Frame{View: tr.Snapshot(), DensityWaves: true})
	assert.Equal(t, waveGlyph, []rune(c.Lines()[0])[7])
}

func TestCanvasUploadLinesIgnoresUnknownLayer(t *testing.T) {
	c := NewCanvas(5, 5)
	c.UploadLines(Layer(42), []LineBatch{{Points: []float64{0, 0, 4, 4}}})
	c.Draw(Frame{View: gesture.Identity, Grid: true, DensityWaves: true})
	assert.Equal(t, 0, litCells(c.Lines()))
	assert.Equal(t, "unknown", Layer(42).String())
	assert.Equal(t, "density-waves", LayerDensityWaves.String())
}

func TestCanvasResizeDropsParticles(t *testing.T) {
	c := NewCanvas(10, 4)
	upload(c, galaxy.Particle{A: 2, B: 2, Temp: 6000, Mag: 1})
	c.Resize(ViewportFor(20, 8))
	assert.Equal(t, 0, c.Particles())
	cols, rows := c.Size()
	assert.Equal(t, 20, cols)
	assert.Equal(t, 8, rows)
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Draw(Frame{View: gesture.Identity})
	out := c.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLineBatchSegments(t *testing.T) {
	assert.Equal(t, 2, LineBatch{Points: make([]float64, 8)}.Segments())
	assert.Equal(t, 0, LineBatch{}.Segments())
}
