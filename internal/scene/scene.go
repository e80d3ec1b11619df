// Package scene drives a galaxy visualization frame by frame. It owns the
// simulation clock, the gesture transform, the viewport and the dirty flags
// that decide when particles, density waves and the grid are rebuilt.
//
// A Scene is not safe for concurrent use; input and frames must be funneled
// through one goroutine.
package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-galaxy/internal/densitywave"
	"github.com/litescript/ls-galaxy/internal/galaxy"
	"github.com/litescript/ls-galaxy/internal/gesture"
	"github.com/litescript/ls-galaxy/internal/grid"
	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/render"
)

// Config holds scene configuration.
type Config struct {
	TimeStep     float64 // simulated years per frame
	ZoomMin      float64
	ZoomMax      float64
	ZoomStep     float64 // zoom increment as a fraction of the fitted scale
	FitMargin    float64 // share of the short viewport side the far field fills
	Seed         uint64
	Grid         grid.Config
	FrameHistory int // frame intervals kept for the frame rate
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		TimeStep:  60000,
		ZoomMin:   1e-5,
		ZoomMax:   30,
		ZoomStep:  1.0 / 30,
		FitMargin: 0.9,
		Seed:      1,
		Grid: grid.Config{
			VerticalSpacing:      5000,
			HorizontalSpacing:    5000,
			VerticalThickEvery:   5,
			HorizontalThickEvery: 5,
		},
		FrameHistory: 60,
	}
}

// NoPreset is the Status.Preset value for hand-tuned settings.
const NoPreset = -1

// Scene orchestrates one or more galaxies drawn through a renderer.
type Scene struct {
	cfg Config
	log *logging.Logger

	renderer  render.Renderer
	gen       *galaxy.Generator
	clipper   *grid.Clipper
	transform *gesture.Transform
	vp        gesture.Viewport

	galaxies []*galaxy.Galaxy
	settings galaxy.Settings
	preset   int

	totalTime float64
	timeStep  float64

	needsSettingsApply bool
	needsGridUpdate    bool
	needsParticleRegen bool
	paused             bool
	defaultsApplied    bool
	gridVersion        uint64

	showGrid  bool
	showWaves bool
	xray      bool

	lines     grid.Lines
	lastRegen time.Duration
	lastErr   error
	lastFrame time.Time
	intervals []time.Duration
}

// New creates a scene with one galaxy built from the default settings.
func New(cfg Config, r render.Renderer, logger *logging.Logger) *Scene {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.FrameHistory <= 0 {
		cfg.FrameHistory = 60
	}

	settings := galaxy.DefaultSettings()
	ts := &settings.Physics.TimeStep
	ts.Step(cfg.TimeStep - ts.Current)

	p := galaxy.DefaultParams()
	settings.Apply(&p)

	return &Scene{
		cfg:                cfg,
		log:                logger.With("scene"),
		renderer:           r,
		gen:                galaxy.NewGenerator(cfg.Seed),
		clipper:            grid.NewClipper(cfg.Grid),
		transform:          gesture.NewTransform(),
		galaxies:           []*galaxy.Galaxy{galaxy.New(p)},
		settings:           settings,
		preset:             NoPreset,
		timeStep:           ts.Current,
		needsSettingsApply: true,
		needsGridUpdate:    true,
		needsParticleRegen: true,
	}
}

// Transform returns the gesture transform. Input handlers feed pointer
// samples into it; the scene notices changes through its version.
func (s *Scene) Transform() *gesture.Transform { return s.transform }

// Viewport returns the current viewport.
func (s *Scene) Viewport() gesture.Viewport { return s.vp }

// Galaxies returns the galaxies of the scene.
func (s *Scene) Galaxies() []*galaxy.Galaxy { return s.galaxies }

// Params returns the parameters of the first galaxy.
func (s *Scene) Params() galaxy.Params { return s.galaxies[0].Params }

// Resize records a new viewport. The first valid size applies the default
// fit-and-centre transform; later sizes keep the galaxy centred.
func (s *Scene) Resize(vp gesture.Viewport) {
	if vp == s.vp {
		return
	}
	old := s.vp
	s.vp = vp
	s.renderer.Resize(vp)

	if !vp.Valid() {
		return
	}

	if !s.defaultsApplied {
		s.applyDefaultTransform()
		s.defaultsApplied = true
	} else if old.Valid() {
		ox, oy := old.Centre()
		nx, ny := vp.Centre()
		s.transform.PostTranslate(nx-ox, ny-oy)
	}

	// render space depends on the viewport
	s.needsParticleRegen = true
	s.needsGridUpdate = true
	s.log.Debug("resized to %vx%v", vp.Width, vp.Height)
}

func (s *Scene) applyDefaultTransform() {
	cx, cy := s.vp.Centre()
	s.transform.Reset()
	s.transform.PostScale(s.fitScale(), 0, 0)
	s.transform.PostTranslate(cx, cy)
}

// fitScale is the scale at which the far field of the first galaxy fills
// FitMargin of the short viewport side.
func (s *Scene) fitScale() float64 {
	far := s.galaxies[0].Params.FarFieldRadius()
	if !s.vp.Valid() || far <= 0 {
		return 1
	}
	short := math.Min(s.vp.Width, s.vp.Height)
	return s.clampScale(s.cfg.FitMargin * short / 2 / far)
}

func (s *Scene) clampScale(v float64) float64 {
	return math.Min(math.Max(v, s.cfg.ZoomMin), s.cfg.ZoomMax)
}

// Frame advances the clock, services the dirty flags and draws one frame.
// now feeds the frame rate estimate.
func (s *Scene) Frame(now time.Time) error {
	s.recordFrame(now)

	if !s.paused {
		s.totalTime += s.timeStep
	}

	if !s.vp.Valid() {
		return nil
	}

	if s.needsSettingsApply {
		s.applySettings()
	}

	if s.needsParticleRegen {
		if err := s.regenerate(); err != nil {
			s.lastErr = err
			return err
		}
		s.needsParticleRegen = false
	}

	if s.needsGridUpdate || s.transform.Version() != s.gridVersion {
		s.updateGrid()
	}

	s.renderer.Draw(s.frame())
	s.lastErr = nil
	return nil
}

func (s *Scene) recordFrame(now time.Time) {
	if !s.lastFrame.IsZero() && now.After(s.lastFrame) {
		s.intervals = append(s.intervals, now.Sub(s.lastFrame))
		if len(s.intervals) > s.cfg.FrameHistory {
			s.intervals = s.intervals[1:]
		}
	}
	s.lastFrame = now
}

func (s *Scene) applySettings() {
	for _, g := range s.galaxies {
		features := g.Params.Features()
		s.settings.Apply(&g.Params)
		g.Params.SetFeatures(features)
	}
	s.timeStep = s.settings.Physics.TimeStep.Current
	s.needsSettingsApply = false
	s.needsParticleRegen = true
}

// regenerate rebuilds every galaxy. Normalization always uses the identity
// transform; the live view is applied at draw time.
func (s *Scene) regenerate() error {
	start := time.Now()

	var vertices []render.Vertex
	var waves []render.LineBatch
	for i, g := range s.galaxies {
		if err := g.Regenerate(s.gen, gesture.Identity, s.vp); err != nil {
			return fmt.Errorf("regenerate galaxy %d: %w", i, err)
		}
		vertices = append(vertices, g.Buffer().Vertices()...)
		waves = append(waves, densitywave.Build(&g.Params)...)
	}

	s.renderer.UploadParticles(vertices)
	s.renderer.UploadLines(render.LayerDensityWaves, waves)

	s.lastRegen = logging.Since(start)
	s.log.Debug("regenerated %d particles in %v", len(vertices), s.lastRegen)
	return nil
}

func (s *Scene) updateGrid() {
	s.gridVersion = s.transform.Version()
	s.needsGridUpdate = false

	s.lines = s.clipper.ComputeVisibleLines(s.transform.Snapshot(), s.vp)
	batch := func(segs []grid.Segment, thick bool) []render.LineBatch {
		return []render.LineBatch{{Points: grid.Flatten(segs, thick), Alpha: 1}}
	}
	s.renderer.UploadLines(render.LayerHorizontalNormal, batch(s.lines.Horizontal, false))
	s.renderer.UploadLines(render.LayerHorizontalThick, batch(s.lines.Horizontal, true))
	s.renderer.UploadLines(render.LayerVerticalNormal, batch(s.lines.Vertical, false))
	s.renderer.UploadLines(render.LayerVerticalThick, batch(s.lines.Vertical, true))
}

func (s *Scene) frame() render.Frame {
	p := &s.galaxies[0].Params
	return render.Frame{
		Uniforms: render.Uniforms{
			Time:                  s.totalTime,
			PerturbationCount:     p.PerturbationCount,
			PerturbationAmplitude: p.PerturbationAmplitude,
			DustSize:              p.DustRenderSize,
			Features:              p.Features(),
		},
		View:         s.transform.Snapshot(),
		Grid:         s.showGrid,
		DensityWaves: s.showWaves,
		XRay:         s.xray,
	}
}

// Time returns the simulated time in years.
func (s *Scene) Time() float64 { return s.totalTime }

// Paused reports whether the clock is stopped.
func (s *Scene) Paused() bool { return s.paused }

// SetPaused stops or resumes the clock.
func (s *Scene) SetPaused(p bool) { s.paused = p }

// TogglePause flips the paused state.
func (s *Scene) TogglePause() { s.paused = !s.paused }

// Features returns the visibility mask of the first galaxy.
func (s *Scene) Features() galaxy.Features { return s.galaxies[0].Params.Features() }

// ToggleFeatures flips the visibility of the populations in f. Visibility
// is a draw-time mask and never triggers regeneration.
func (s *Scene) ToggleFeatures(f galaxy.Features) {
	for _, g := range s.galaxies {
		g.Params.SetFeatures(g.Params.Features() ^ f)
	}
}

// SetGrid shows or hides the reference grid.
func (s *Scene) SetGrid(on bool) {
	if on && !s.showGrid {
		s.needsGridUpdate = true
	}
	s.showGrid = on
}

// ShowGrid reports whether the grid is drawn.
func (s *Scene) ShowGrid() bool { return s.showGrid }

// SetDensityWaves shows or hides the density-wave overlay.
func (s *Scene) SetDensityWaves(on bool) { s.showWaves = on }

// ShowDensityWaves reports whether the overlay is drawn.
func (s *Scene) ShowDensityWaves() bool { return s.showWaves }

// SetXRay switches between additive and alpha-over blending.
func (s *Scene) SetXRay(on bool) { s.xray = on }

// XRay reports whether x-ray blending is on.
func (s *Scene) XRay() bool { return s.xray }

// SetDarkMatter switches the rotation curve model. Orbital velocities are
// baked into particles, so this regenerates them.
func (s *Scene) SetDarkMatter(on bool) {
	s.settings.Physics.DarkMatter = on
	s.needsSettingsApply = true
	s.preset = NoPreset
}

// Settings returns the current settings.
func (s *Scene) Settings() galaxy.Settings { return s.settings }

// ApplySettings replaces the settings wholesale. They are applied to every
// galaxy on the next frame, which regenerates all particles.
func (s *Scene) ApplySettings(st galaxy.Settings) {
	s.settings = st
	s.needsSettingsApply = true
	s.preset = NoPreset
}

// SelectPreset applies Presets[i] to the first galaxy and forces
// regeneration. Settings are rebuilt to reflect the preset.
func (s *Scene) SelectPreset(i int) error {
	pr, err := galaxy.PresetByIndex(i)
	if err != nil {
		return err
	}

	g := s.galaxies[0]
	g.Params.ApplyPreset(pr)
	s.settings = galaxy.SettingsFromParams(&g.Params, s.timeStep)
	s.preset = i
	s.needsParticleRegen = true
	s.log.Info("preset %d selected", i)
	return nil
}

// ForceRegenerate rebuilds particles on the next frame.
func (s *Scene) ForceRegenerate() { s.needsParticleRegen = true }

// TimeStep returns the simulated years added per frame.
func (s *Scene) TimeStep() float64 { return s.timeStep }

// SetTimeStep changes the clock rate without regenerating. The value is
// clamped to the settings bounds.
func (s *Scene) SetTimeStep(v float64) {
	ts := &s.settings.Physics.TimeStep
	ts.Step(v - ts.Current)
	s.timeStep = ts.Current
}
