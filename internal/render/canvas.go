package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
)

// Each terminal cell covers one device unit horizontally and two vertically,
// which keeps device units roughly square on screen.
const cellHeight = 2

// luminance ramp, dark to bright
var ramp = []rune(" .:-=+*#%@")

const (
	exposure     = 2.5 // tone mapping strength
	minLuminance = 0.04
	gridNormalFg = lipgloss.Color("236")
	gridThickFg  = lipgloss.Color("239")
	gridGlyph    = '·'
	waveGlyph    = '∙'
	background   = lipgloss.Color("0")
)

// h2Tint matches the reddish glow of H2 regions.
var h2Tint = colorful.Color{R: 2, G: 0.5, B: 0.5}

// Canvas rasterizes frames into coloured terminal cells.
type Canvas struct {
	cols, rows int
	vp         gesture.Viewport

	particles []galaxy.Particle
	lines     [numLayers][]LineBatch

	light [][]colorful.Color
	glyph [][]rune
	fg    [][]lipgloss.Color
}

// NewCanvas returns a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(ViewportFor(cols, rows))
	return c
}

// ViewportFor returns the device viewport covered by cols x rows cells.
func ViewportFor(cols, rows int) gesture.Viewport {
	return gesture.Viewport{Width: float64(cols), Height: float64(rows * cellHeight)}
}

// Viewport returns the device viewport of the canvas.
func (c *Canvas) Viewport() gesture.Viewport { return c.vp }

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Resize reallocates the cell buffers. Uploaded particles are dropped since
// their normalization depends on the viewport.
func (c *Canvas) Resize(vp gesture.Viewport) {
	c.vp = vp
	c.cols = max(int(vp.Width), 0)
	c.rows = max(int(vp.Height)/cellHeight, 0)
	c.particles = nil

	c.light = make([][]colorful.Color, c.rows)
	c.glyph = make([][]rune, c.rows)
	c.fg = make([][]lipgloss.Color, c.rows)
	for y := range c.rows {
		c.light[y] = make([]colorful.Color, c.cols)
		c.glyph[y] = make([]rune, c.cols)
		c.fg[y] = make([]lipgloss.Color, c.cols)
	}
}

// UploadParticles decodes vertices back to world units for CPU evaluation.
func (c *Canvas) UploadParticles(vs []Vertex) {
	c.particles = make([]galaxy.Particle, len(vs))
	for i, v := range vs {
		p := v.Particle()
		p.A, p.B = gesture.Identity.FromRenderSpace(c.vp, p.A, p.B)
		c.particles[i] = p
	}
}

// Particles returns the number of uploaded particles.
func (c *Canvas) Particles() int { return len(c.particles) }

// UploadLines replaces the batches of one layer.
func (c *Canvas) UploadLines(layer Layer, batches []LineBatch) {
	if layer < 0 || layer >= numLayers {
		return
	}
	c.lines[layer] = batches
}

// Draw rasterizes one frame into the cell buffers.
func (c *Canvas) Draw(f Frame) {
	c.clear()

	if f.Grid {
		for _, l := range []Layer{LayerHorizontalNormal, LayerVerticalNormal} {
			c.drawLayer(l, f.View, gridGlyph, gridNormalFg)
		}
		for _, l := range []Layer{LayerHorizontalThick, LayerVerticalThick} {
			c.drawLayer(l, f.View, gridGlyph, gridThickFg)
		}
	}

	c.drawParticles(f)

	if f.DensityWaves {
		c.drawLayer(LayerDensityWaves, f.View, waveGlyph, "")
	}

	c.compose()
}

func (c *Canvas) clear() {
	for y := range c.rows {
		for x := range c.cols {
			c.light[y][x] = colorful.Color{}
			c.glyph[y][x] = 0
			c.fg[y][x] = background
		}
	}
}

func (c *Canvas) cell(dx, dy float64) (x, y int, ok bool) {
	x = int(math.Floor(dx))
	y = int(math.Floor(dy / cellHeight))
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return 0, 0, false
	}
	return x, y, true
}

func (c *Canvas) drawParticles(f Frame) {
	u := f.Uniforms
	scale := f.View.Scale()

	for _, p := range c.particles {
		if !u.Features.Shows(p.Type) {
			continue
		}

		wx, wy := p.Position(u.Time, u.PerturbationCount, u.PerturbationAmplitude)
		x, y, ok := c.cell(f.View.Apply(wx, wy))
		if !ok {
			continue
		}

		size := p.PointSize(u.Time, u.PerturbationCount, u.PerturbationAmplitude, u.DustSize)
		if size <= 0 {
			continue
		}

		col := galaxy.ColorFromTemperature(p.Temp)
		switch p.Type {
		case galaxy.H2Glow:
			col = colorful.Color{R: col.R * h2Tint.R, G: col.G * h2Tint.G, B: col.B * h2Tint.B}
		case galaxy.H2Core:
			col = colorful.Color{R: 1, G: 1, B: 1}
		}

		weight := p.Mag * p.Type.Opacity() * pointWeight(size, scale)
		c.splat(x, y, col, weight, f.XRay)
	}
}

// pointWeight converts a point size in pixels to the light one cell receives.
func pointWeight(size, scale float64) float64 {
	return min(size/4, 8) * min(max(scale*50, 0.5), 4)
}

func (c *Canvas) splat(x, y int, col colorful.Color, weight float64, xray bool) {
	if xray {
		c.light[y][x] = c.light[y][x].BlendRgb(col, min(weight, 1))
		return
	}
	l := c.light[y][x]
	c.light[y][x] = colorful.Color{R: l.R + col.R*weight, G: l.G + col.G*weight, B: l.B + col.B*weight}
}

func (c *Canvas) drawLayer(layer Layer, view gesture.Snapshot, glyph rune, fg lipgloss.Color) {
	for _, b := range c.lines[layer] {
		color := fg
		if color == "" {
			color = lipgloss.Color(b.Color.BlendRgb(colorful.Color{}, 1-b.Alpha).Clamped().Hex())
		}
		for i := 0; i+3 < len(b.Points); i += 4 {
			x1, y1, x2, y2 := b.Points[i], b.Points[i+1], b.Points[i+2], b.Points[i+3]
			if layer.World() {
				x1, y1 = view.Apply(x1, y1)
				x2, y2 = view.Apply(x2, y2)
			}
			c.line(x1, y1, x2, y2, glyph, color)
		}
	}
}

// line walks the segment in cell steps and stamps glyph on each visited cell.
func (c *Canvas) line(x1, y1, x2, y2 float64, glyph rune, fg lipgloss.Color) {
	dx, dy := x2-x1, (y2-y1)/cellHeight
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps > 4*(c.cols+c.rows) {
		// mostly off screen: clip the walk rather than the segment
		steps = 4 * (c.cols + c.rows)
	}
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y, ok := c.cell(x1+t*(x2-x1), y1+t*(y2-y1))
		if !ok {
			continue
		}
		c.glyph[y][x] = glyph
		c.fg[y][x] = fg
	}
}

// compose tone maps the accumulated light into glyphs. Bright cells win
// over line glyphs.
func (c *Canvas) compose() {
	for y := range c.rows {
		for x := range c.cols {
			l := c.light[y][x]
			lum := max(l.R, l.G, l.B)
			if lum < minLuminance {
				if c.glyph[y][x] == 0 {
					c.glyph[y][x] = ' '
				}
				continue
			}

			mapped := 1 - math.Exp(-exposure*lum)
			idx := 1 + int(mapped*float64(len(ramp)-2)+0.5)
			c.glyph[y][x] = ramp[min(idx, len(ramp)-1)]

			hue := colorful.Color{R: l.R / lum, G: l.G / lum, B: l.B / lum}
			c.fg[y][x] = lipgloss.Color(hue.Clamped().Hex())
		}
	}
}

// Lines returns the glyphs of the last frame without styling.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for y := range c.rows {
		out[y] = string(c.glyph[y])
	}
	return out
}

// String renders the last frame with colours, one style per run of equal
// foreground.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := range c.rows {
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.fg[y][x] == c.fg[y][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.fg[y][start])
			b.WriteString(style.Render(string(c.glyph[y][start:x])))
			start = x
		}
		if y < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
