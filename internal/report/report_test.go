package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-galaxy/internal/galaxy"
)

func testBuffer(t *testing.T) (galaxy.Params, galaxy.Buffer) {
	t.Helper()
	p := galaxy.DefaultParams()
	p.Stars.Count = 2000
	p.Dust.Count = 100
	p.Filaments.Count = 0
	p.H2.Count = 5

	dist, err := p.Distribution()
	require.NoError(t, err)
	buf, err := galaxy.NewGenerator(7).Generate(&p, dist)
	require.NoError(t, err)
	return p, buf
}

func TestWriteSummary(t *testing.T) {
	p, buf := testBuffer(t)
	var out bytes.Buffer
	WriteSummary(&out, &p, buf, 12*time.Millisecond)

	s := out.String()
	assert.Contains(t, s, "Galaxy radius 15000 pc")
	assert.Contains(t, s, "star")
	assert.Contains(t, s, "filament")
	assert.Contains(t, s, "Total: 2110 particles generated in 12ms")
}

func TestRadii(t *testing.T) {
	buf := galaxy.Buffer{
		galaxy.BlackHole,
		{A: -3, Type: galaxy.Star},
		{A: 5, Type: galaxy.Dust},
		{A: 7, Type: galaxy.Star},
	}
	assert.Equal(t, []float64{3, 7}, Radii(buf, galaxy.Star))
	assert.Empty(t, Radii(buf, galaxy.H2Core))
}

func TestWriteRotationCurve(t *testing.T) {
	var out bytes.Buffer
	WriteRotationCurve(&out, 30000, 40, 8)
	assert.Contains(t, out.String(), "rotation velocity")
	assert.GreaterOrEqual(t, strings.Count(out.String(), "\n"), 8)
}

func TestWriteRadialHistogram(t *testing.T) {
	p, buf := testBuffer(t)
	var out bytes.Buffer
	WriteRadialHistogram(&out, buf, p.FarFieldRadius(), 20, 6)

	s := out.String()
	assert.Contains(t, s, "star surface density")
	assert.Contains(t, s, "Peak ring")
}

func TestWriteRadialHistogramEmpty(t *testing.T) {
	var out bytes.Buffer
	WriteRadialHistogram(&out, galaxy.Buffer{galaxy.BlackHole}, 1000, 0, 6)
	assert.Equal(t, "No stars\n", out.String())
}

func TestWriteFrame(t *testing.T) {
	var out bytes.Buffer
	WriteFrame(&out, []string{" * ", "   "}, "t=0")
	assert.Equal(t, " *\n\nt=0\n", out.String())
}
