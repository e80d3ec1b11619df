package cdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// galaxyProfile mirrors the default galaxy: radius 15000, core 6000.
func galaxyProfile() Profile {
	return Profile{I0: 1, K: 0.02, A: 15000.0 / 3, BulgeRadius: 6000}
}

func newGalaxyDistribution(t *testing.T) *Distribution {
	t.Helper()
	d, err := New(galaxyProfile(), 0, 30000, 1000)
	require.NoError(t, err)
	return d
}

func TestIntensityContinuousAtBulge(t *testing.T) {
	p := galaxyProfile()
	below := p.Intensity(p.BulgeRadius - 1e-6)
	at := p.Intensity(p.BulgeRadius)
	assert.InDelta(t, below, at, 1e-9)
	assert.Greater(t, p.Intensity(0), p.Intensity(p.BulgeRadius))
}

func TestBoundaries(t *testing.T) {
	d := newGalaxyDistribution(t)

	v0, err := d.ValueFromProbability(0)
	require.NoError(t, err)
	assert.InDelta(t, d.Min(), v0, 1e-9)

	v1, err := d.ValueFromProbability(1 - 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, d.Max(), v1, 60)

	vmax, err := d.ValueFromProbability(1)
	require.NoError(t, err)
	assert.InDelta(t, d.Max(), vmax, 1e-6)

	p0, err := d.ProbabilityFromValue(d.Min())
	require.NoError(t, err)
	assert.InDelta(t, 0, p0, 1e-12)

	p1, err := d.ProbabilityFromValue(d.Max())
	require.NoError(t, err)
	assert.InDelta(t, 1, p1, 1e-12)
}

func TestMonotonic(t *testing.T) {
	d := newGalaxyDistribution(t)

	prev := math.Inf(-1)
	for i := 0; i <= 5000; i++ {
		p := float64(i) / 5000
		v, err := d.ValueFromProbability(p)
		require.NoError(t, err)
		if v < prev {
			t.Fatalf("ValueFromProbability(%v) = %v < previous %v", p, v, prev)
		}
		prev = v
	}

	prev = math.Inf(-1)
	for v := 0.0; v <= 30000; v += 7 {
		p, err := d.ProbabilityFromValue(v)
		require.NoError(t, err)
		if p < prev {
			t.Fatalf("ProbabilityFromValue(%v) = %v < previous %v", v, p, prev)
		}
		prev = p
	}
}

func TestRoundTrip(t *testing.T) {
	d := newGalaxyDistribution(t)

	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		v, err := d.ValueFromProbability(p)
		require.NoError(t, err)
		got, err := d.ProbabilityFromValue(v)
		require.NoError(t, err)
		assert.InDelta(t, p, got, 2e-3, "round trip at p=%v (v=%v)", p, v)
	}
}

func TestOutOfRange(t *testing.T) {
	d := newGalaxyDistribution(t)

	for _, p := range []float64{-0.001, 1.001, math.NaN()} {
		_, err := d.ValueFromProbability(p)
		assert.ErrorIs(t, err, ErrOutOfRange, "p=%v", p)
	}
	for _, v := range []float64{-1, 30000.5} {
		_, err := d.ProbabilityFromValue(v)
		assert.ErrorIs(t, err, ErrOutOfRange, "v=%v", v)
	}
}

func TestSetupRejectsDegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		min, max float64
		steps    int
	}{
		{"zero intensity", Profile{I0: 0, K: 0.02, A: 1000, BulgeRadius: 100}, 0, 1000, 100},
		{"empty domain", galaxyProfile(), 10, 10, 100},
		{"too few steps", galaxyProfile(), 0, 1000, 1},
		{"zero disc scale", Profile{I0: 1, K: 0.02, A: 0, BulgeRadius: 100}, 0, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.profile, tt.min, tt.max, tt.steps)
			assert.Error(t, err)
		})
	}
}

func TestOddStepsRoundedUp(t *testing.T) {
	d, err := New(galaxyProfile(), 0, 30000, 999)
	require.NoError(t, err)
	assert.Len(t, d.x1, 501)
	assert.Len(t, d.x2, 1001)
}

func TestUnsetDistribution(t *testing.T) {
	var d Distribution
	_, err := d.ValueFromProbability(0.5)
	assert.Error(t, err)
	_, err = d.ProbabilityFromValue(0.5)
	assert.Error(t, err)
}

func TestSteepBulgeStaysFinite(t *testing.T) {
	// nearly all light sits in the first interval; later slopes underflow to zero
	d, err := New(Profile{I0: 1, K: 400, A: 1, BulgeRadius: 5000}, 0, 10000, 200)
	require.NoError(t, err)

	for i := 0; i <= 100; i++ {
		v, err := d.ValueFromProbability(float64(i) / 100)
		require.NoError(t, err)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("ValueFromProbability(%v) = %v", float64(i)/100, v)
		}
	}
}
