package galaxy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeValueSet(t *testing.T) {
	r, err := NewRangeValue(0, 10, 5, 1, false)
	require.NoError(t, err)

	assert.NoError(t, r.Set(10))
	assert.Equal(t, 10.0, r.Current)

	assert.ErrorIs(t, r.Set(10.01), ErrOutOfRange)
	assert.ErrorIs(t, r.Set(-1), ErrOutOfRange)
	assert.ErrorIs(t, r.Set(math.NaN()), ErrOutOfRange)
	assert.Equal(t, 10.0, r.Current, "failed Set must not change the value")
}

func TestNewRangeValueErrors(t *testing.T) {
	_, err := NewRangeValue(5, 1, 3, 0, false)
	assert.Error(t, err)

	_, err = NewRangeValue(0, 1, 3, 0, false)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRangeValueStep(t *testing.T) {
	r := mustRange(0, 100, 95, 0, false)
	r.Step(10)
	assert.Equal(t, 100.0, r.Current)
	r.Step(-250)
	assert.Equal(t, 0.0, r.Current)
}

func TestRangeValueString(t *testing.T) {
	assert.Equal(t, "0.00040", mustRange(-1, 1, 0.0004, 5, false).String())
	assert.Equal(t, "150%", mustRange(0, 2, 1.5, 0, true).String())
	assert.Equal(t, "13000", mustRange(0, 20000, 13000, 0, false).String())
}

func TestRangeValueFraction(t *testing.T) {
	assert.InDelta(t, 0.25, mustRange(0, 4, 1, 0, false).Fraction(), 1e-12)
	assert.Equal(t, 0.0, mustRange(3, 3, 3, 0, false).Fraction())
}

func TestDefaultSettingsInBounds(t *testing.T) {
	s := DefaultSettings()
	all := []RangeValue{
		s.DensityWave.CoreRadius, s.DensityWave.Radius, s.DensityWave.AngularOffset,
		s.DensityWave.EccentricityInner, s.DensityWave.EccentricityOuter,
		s.DensityWave.PerturbationCount, s.DensityWave.PerturbationAmp,
		s.Physics.TimeStep, s.Physics.BaseTemperature,
		s.Render.Stars, s.Render.H2, s.Render.Dust, s.Render.Filaments,
		s.Render.StarSize, s.Render.H2Size, s.Render.DustSize, s.Render.FilamentSize, s.Render.GalaxySize,
	}
	for i, r := range all {
		assert.True(t, r.Lower <= r.Current && r.Current <= r.Upper, "range %d: %+v", i, r)
	}
}

func TestSettingsApply(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.DensityWave.Radius.Set(12000))
	require.NoError(t, s.Render.H2.Set(123))
	s.Physics.DarkMatter = false

	p := DefaultParams()
	s.Apply(&p)

	assert.Equal(t, 12000.0, p.Radius())
	assert.Equal(t, 24000.0, p.FarFieldRadius())
	assert.Equal(t, 4000.0, p.CoreRadius)
	assert.Equal(t, 0.0004, p.AngularOffset)
	assert.Equal(t, 2, p.PerturbationCount)
	assert.Equal(t, 123, p.H2.Count)
	assert.False(t, p.DarkMatter)
	assert.True(t, p.Stars.Show, "visibility is not part of settings")
}

func TestSettingsFromParams(t *testing.T) {
	p := DefaultParams()
	p.ApplyPreset(Presets[3])

	s := SettingsFromParams(&p, 1e9)
	assert.Equal(t, s.Physics.TimeStep.Upper, s.Physics.TimeStep.Current, "time step clamps")

	q := DefaultParams()
	s.Apply(&q)
	assert.Equal(t, p.Radius(), q.Radius())
	assert.Equal(t, p.CoreRadius, q.CoreRadius)
	assert.Equal(t, p.PerturbationCount, q.PerturbationCount)
	assert.Equal(t, p.Stars.Count, q.Stars.Count)
}

func TestPresets(t *testing.T) {
	assert.Len(t, Presets, 8)

	_, err := PresetByIndex(len(Presets))
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = PresetByIndex(-1)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	for i := range Presets {
		pr, err := PresetByIndex(i)
		require.NoError(t, err)

		p := DefaultParams()
		p.Dust.Show = false
		p.ApplyPreset(pr)
		assert.Equal(t, 2*pr.Radius, p.FarFieldRadius(), "preset %d", i)
		assert.Equal(t, 40000, p.Stars.Count)
		assert.False(t, p.Dust.Show, "ApplyPreset must keep visibility")
		assert.NoError(t, p.Validate())
	}
}
