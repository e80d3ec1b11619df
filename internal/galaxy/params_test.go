package galaxy

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSetRadiusKeepsFarField(t *testing.T) {
	p := DefaultParams()
	if p.FarFieldRadius() != 2*p.Radius() {
		t.Fatalf("FarFieldRadius() = %v, want %v", p.FarFieldRadius(), 2*p.Radius())
	}

	for _, r := range []float64{1000, 13000, 20000.5} {
		p.SetRadius(r)
		if p.FarFieldRadius() != 2*r {
			t.Errorf("SetRadius(%v): FarFieldRadius() = %v", r, p.FarFieldRadius())
		}
	}
}

func TestEccentricityRegions(t *testing.T) {
	p := DefaultParams()
	p.SetRadius(10000)
	p.CoreRadius = 4000
	p.EccentricityInner = 0.8
	p.EccentricityOuter = 0.9

	tests := []struct {
		r    float64
		want float64
	}{
		{0, 1},
		{2000, 0.9},
		{4000, 0.8},
		{7000, 0.85},
		{10000, 0.9},
		{15000, 0.95},
		{20000, 1},
		{50000, 1},
	}

	for _, tt := range tests {
		if got := p.Eccentricity(tt.r); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Eccentricity(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestEccentricityContinuity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const eps = 1e-7

	for i := 0; i < 200; i++ {
		p := DefaultParams()
		p.SetRadius(1000 + 19000*rng.Float64())
		p.CoreRadius = 10 + (p.Radius()-20)*rng.Float64()
		p.EccentricityInner = 2 * rng.Float64()
		p.EccentricityOuter = 2 * rng.Float64()

		for _, edge := range []float64{p.CoreRadius, p.Radius(), p.FarFieldRadius()} {
			below := p.Eccentricity(edge - eps)
			above := p.Eccentricity(edge + eps)
			if math.Abs(below-above) > 1e-6 {
				t.Fatalf("jump at r=%v (core=%v radius=%v): %v vs %v",
					edge, p.CoreRadius, p.Radius(), below, above)
			}
		}
	}
}

func TestEccentricityCoreEqualsRadius(t *testing.T) {
	p := DefaultParams()
	p.SetRadius(5000)
	p.CoreRadius = 5000

	if got := p.Eccentricity(5000); math.IsNaN(got) || got != p.EccentricityInner {
		t.Errorf("Eccentricity(5000) = %v, want %v", got, p.EccentricityInner)
	}
}

func TestTiltAndVelocity(t *testing.T) {
	p := DefaultParams()
	p.AngularOffset = 0.0004

	if got := p.Tilt(10000); math.Abs(got-4) > 1e-12 {
		t.Errorf("Tilt(10000) = %v, want 4", got)
	}
	if got := p.OrbitalVelocity(0); got != 0 {
		t.Errorf("OrbitalVelocity(0) = %v, want 0", got)
	}

	p.DarkMatter = false
	without := p.OrbitalVelocity(12000)
	p.DarkMatter = true
	with := p.OrbitalVelocity(12000)
	if with <= without {
		t.Errorf("dark matter velocity %v should exceed %v", with, without)
	}
}

func TestValidate(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}

	bad := DefaultParams()
	bad.SetRadius(0)
	if bad.Validate() == nil {
		t.Error("zero radius should be rejected")
	}

	bad = DefaultParams()
	bad.Dust.Count = -1
	if bad.Validate() == nil {
		t.Error("negative count should be rejected")
	}

	bad = DefaultParams()
	bad.SetRadius(5000)
	bad.CoreRadius = 10000
	if bad.Validate() == nil {
		t.Error("core radius beyond the galaxy radius should be rejected")
	}

	edge := DefaultParams()
	edge.CoreRadius = edge.Radius()
	if err := edge.Validate(); err != nil {
		t.Errorf("core radius equal to the galaxy radius rejected: %v", err)
	}
}

func TestFeatures(t *testing.T) {
	p := DefaultParams()
	if got := p.Features(); got != FeatureAll {
		t.Errorf("Features() = %04b, want %04b", got, FeatureAll)
	}

	p.Dust.Show = false
	p.H2.Show = false
	f := p.Features()
	if f != FeatureStars|FeatureFilaments {
		t.Errorf("Features() = %04b", f)
	}
	if !f.Shows(Star) || f.Shows(Dust) || !f.Shows(Filament) || f.Shows(H2Glow) || f.Shows(H2Core) {
		t.Errorf("Shows() disagrees with mask %04b", f)
	}

	p.SetFeatures(FeatureDust | FeatureH2)
	if p.Stars.Show || !p.Dust.Show || p.Filaments.Show || !p.H2.Show {
		t.Errorf("SetFeatures left flags %+v %+v %+v %+v", p.Stars, p.Dust, p.Filaments, p.H2)
	}
	if got := p.Features(); got != FeatureDust|FeatureH2 {
		t.Errorf("Features() after SetFeatures = %04b", got)
	}
}

func TestDistributionSpansFarField(t *testing.T) {
	p := DefaultParams()
	d, err := p.Distribution()
	if err != nil {
		t.Fatalf("Distribution() error: %v", err)
	}
	if d.Min() != 0 || d.Max() != p.FarFieldRadius() {
		t.Errorf("domain = [%v, %v], want [0, %v]", d.Min(), d.Max(), p.FarFieldRadius())
	}
}
