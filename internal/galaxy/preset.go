package galaxy

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned for a preset index outside the table.
var ErrUnknownPreset = errors.New("galaxy: unknown preset")

// Preset is a stored galaxy shape.
type Preset struct {
	Radius            float64
	CoreRadius        float64
	AngularOffset     float64
	EccentricityInner float64
	EccentricityOuter float64
	DarkMatter        bool
	PerturbationCount int
	PerturbationAmp   float64
	DustRenderSize    float64
	BaseTemperature   float64

	Stars        int
	Dust         int
	H2           int
	Filaments    int
	StarSize     float64
	DustSize     float64
	H2Size       float64
	FilamentSize float64
	GalaxySize   float64
}

func preset(radius, core, offset, exIn, exOut float64, dm bool, pertN int, pertAmp, dustSize, temp float64) Preset {
	return Preset{
		Radius:            radius,
		CoreRadius:        core,
		AngularOffset:     offset,
		EccentricityInner: exIn,
		EccentricityOuter: exOut,
		DarkMatter:        dm,
		PerturbationCount: pertN,
		PerturbationAmp:   pertAmp,
		DustRenderSize:    dustSize,
		BaseTemperature:   temp,
		Stars:             40000,
		Dust:              40000,
		H2:                400,
		Filaments:         400,
		StarSize:          1,
		DustSize:          1,
		H2Size:            1,
		FilamentSize:      1,
		GalaxySize:        1,
	}
}

// Presets is the built-in galaxy table.
var Presets = []Preset{
	preset(16000, 4000, -0.0003, 0.8, 0.85, true, 0, 40, 58, 4500),
	preset(13000, 4000, 0.00064, 0.9, 0.9, true, 0, 0, 75, 4100),
	preset(13000, 4000, 0.0004, 1.35, 1.05, true, 0, 0, 70, 4500),
	preset(13000, 4500, 0.0002, 0.65, 0.95, true, 3, 72, 80, 4000),
	preset(15000, 4000, 0.0003, 1.45, 1.0, true, 0, 0, 80, 4500),
	preset(14000, 12500, 0.0002, 0.65, 0.95, true, 3, 72, 85, 2200),
	preset(13000, 1500, 0.0004, 1.1, 1.0, true, 1, 20, 80, 2800),
	preset(13000, 4000, 0.0004, 0.85, 0.95, true, 1, 20, 80, 4500),
}

// PresetByIndex returns Presets[i].
func PresetByIndex(i int) (Preset, error) {
	if i < 0 || i >= len(Presets) {
		return Preset{}, fmt.Errorf("%w: %d (have %d)", ErrUnknownPreset, i, len(Presets))
	}
	return Presets[i], nil
}

// ApplyPreset overwrites the shape, physics and population settings of p.
// Visibility flags are left alone.
func (p *Params) ApplyPreset(pr Preset) {
	p.SetRadius(pr.Radius)
	p.CoreRadius = pr.CoreRadius
	p.AngularOffset = pr.AngularOffset
	p.EccentricityInner = pr.EccentricityInner
	p.EccentricityOuter = pr.EccentricityOuter
	p.DarkMatter = pr.DarkMatter
	p.PerturbationCount = pr.PerturbationCount
	p.PerturbationAmplitude = pr.PerturbationAmp
	p.DustRenderSize = pr.DustRenderSize
	p.BaseTemperature = pr.BaseTemperature

	p.Stars.Count, p.Stars.Size = pr.Stars, pr.StarSize
	p.Dust.Count, p.Dust.Size = pr.Dust, pr.DustSize
	p.H2.Count, p.H2.Size = pr.H2, pr.H2Size
	p.Filaments.Count, p.Filaments.Size = pr.Filaments, pr.FilamentSize
	p.GalaxySize = pr.GalaxySize
}
