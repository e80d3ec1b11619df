package galaxy

// DensityWaveSettings holds the orbit shape controls.
type DensityWaveSettings struct {
	CoreRadius        RangeValue
	Radius            RangeValue
	AngularOffset     RangeValue
	EccentricityInner RangeValue
	EccentricityOuter RangeValue
	PerturbationCount RangeValue
	PerturbationAmp   RangeValue
}

// PhysicsSettings holds the simulation controls.
type PhysicsSettings struct {
	DarkMatter      bool
	TimeStep        RangeValue // years per frame
	BaseTemperature RangeValue
}

// RenderSettings holds population counts and size factors.
type RenderSettings struct {
	Stars        RangeValue
	H2           RangeValue
	Dust         RangeValue
	Filaments    RangeValue
	StarSize     RangeValue
	H2Size       RangeValue
	DustSize     RangeValue
	FilamentSize RangeValue
	GalaxySize   RangeValue
}

// Settings is the complete user facing configuration surface.
type Settings struct {
	DensityWave DensityWaveSettings
	Physics     PhysicsSettings
	Render      RenderSettings
}

// DefaultSettings returns the initial control values.
func DefaultSettings() Settings {
	return Settings{
		DensityWave: DensityWaveSettings{
			CoreRadius:        mustRange(10, 20000, 4000, 0, false),
			Radius:            mustRange(1000, 20000, 13000, 0, false),
			AngularOffset:     mustRange(-0.0025, 0.0025, 0.0004, 5, false),
			EccentricityInner: mustRange(0, 50, 0.85, 2, false),
			EccentricityOuter: mustRange(0, 50, 0.95, 2, false),
			PerturbationCount: mustRange(0, 25, 2, 0, false),
			PerturbationAmp:   mustRange(2, 100, 40, 0, false),
		},
		Physics: PhysicsSettings{
			DarkMatter:      true,
			TimeStep:        mustRange(-500000, 500000, 60000, 0, false),
			BaseTemperature: mustRange(1000, 10000, 4000, 0, false),
		},
		Render: RenderSettings{
			Stars:        mustRange(0, 100000, 60000, 0, false),
			H2:           mustRange(0, 600, 400, 0, false),
			Dust:         mustRange(0, 100000, 60000, 0, false),
			Filaments:    mustRange(0, 1000, 600, 0, false),
			StarSize:     mustRange(0, 2, 1, 0, true),
			H2Size:       mustRange(0, 2, 1, 0, true),
			DustSize:     mustRange(0, 2, 1, 0, true),
			FilamentSize: mustRange(0, 2, 1, 0, true),
			GalaxySize:   mustRange(0, 2, 1, 0, true),
		},
	}
}

// Apply copies the settings into p. The time step is owned by the caller.
func (s Settings) Apply(p *Params) {
	dw := s.DensityWave
	p.CoreRadius = dw.CoreRadius.Current
	p.SetRadius(dw.Radius.Current)
	p.AngularOffset = dw.AngularOffset.Current
	p.EccentricityInner = dw.EccentricityInner.Current
	p.EccentricityOuter = dw.EccentricityOuter.Current
	p.PerturbationCount = dw.PerturbationCount.Int()
	p.PerturbationAmplitude = dw.PerturbationAmp.Current

	p.DarkMatter = s.Physics.DarkMatter
	p.BaseTemperature = s.Physics.BaseTemperature.Current

	r := s.Render
	p.Stars.Count, p.Stars.Size = r.Stars.Int(), r.StarSize.Current
	p.H2.Count, p.H2.Size = r.H2.Int(), r.H2Size.Current
	p.Dust.Count, p.Dust.Size = r.Dust.Int(), r.DustSize.Current
	p.Filaments.Count, p.Filaments.Size = r.Filaments.Int(), r.FilamentSize.Current
	p.GalaxySize = r.GalaxySize.Current
}

// SettingsFromParams builds settings reflecting p, keeping the default
// bounds. Values outside the bounds are clamped.
func SettingsFromParams(p *Params, timeStep float64) Settings {
	s := DefaultSettings()
	set := func(r *RangeValue, v float64) {
		r.Current = min(max(v, r.Lower), r.Upper)
	}

	dw := &s.DensityWave
	set(&dw.CoreRadius, p.CoreRadius)
	set(&dw.Radius, p.radius)
	set(&dw.AngularOffset, p.AngularOffset)
	set(&dw.EccentricityInner, p.EccentricityInner)
	set(&dw.EccentricityOuter, p.EccentricityOuter)
	set(&dw.PerturbationCount, float64(p.PerturbationCount))
	set(&dw.PerturbationAmp, p.PerturbationAmplitude)

	s.Physics.DarkMatter = p.DarkMatter
	set(&s.Physics.TimeStep, timeStep)
	set(&s.Physics.BaseTemperature, p.BaseTemperature)

	r := &s.Render
	set(&r.Stars, float64(p.Stars.Count))
	set(&r.H2, float64(p.H2.Count))
	set(&r.Dust, float64(p.Dust.Count))
	set(&r.Filaments, float64(p.Filaments.Count))
	set(&r.StarSize, p.Stars.Size)
	set(&r.H2Size, p.H2.Size)
	set(&r.DustSize, p.Dust.Size)
	set(&r.FilamentSize, p.Filaments.Size)
	set(&r.GalaxySize, p.GalaxySize)
	return s
}
