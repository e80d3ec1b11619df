package galaxy

import (
	"math"
	"testing"
)

func TestPositionAxes(t *testing.T) {
	tests := []struct {
		name         string
		theta0, tilt float64
		wantX, wantY float64
	}{
		{"periapsis", 0, 0, 100, 0},
		{"quarter", 90, 0, 0, 50},
		{"half", 180, 0, -100, 0},
		{"tilted quarter turn", 0, math.Pi / 2, 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Position(100, 50, tt.theta0, 0, tt.tilt, 0, 0, 0)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Position() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPositionAdvancesWithTime(t *testing.T) {
	p := Particle{A: 100, B: 100, Theta0: 0, VelTheta: 1}
	x, y := p.Position(90, 0, 0)
	if math.Abs(x) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("Position(t=90) = (%v, %v), want (0, 100)", x, y)
	}
}

func TestPositionPerturbation(t *testing.T) {
	x0, y0 := Position(100, 80, 30, 0, 0, 0, 0, 0)
	x1, y1 := Position(100, 80, 30, 0, 0, 0, 2, 40)

	alpha := 30 * math.Pi / 180
	if math.Abs(x1-x0-2.5*math.Sin(4*alpha)) > 1e-9 || math.Abs(y1-y0-2.5*math.Cos(4*alpha)) > 1e-9 {
		t.Errorf("perturbation offset = (%v, %v)", x1-x0, y1-y0)
	}

	// amplitude without a count is ignored
	x2, y2 := Position(100, 80, 30, 0, 0, 0, 0, 40)
	if x2 != x0 || y2 != y0 {
		t.Error("perturbation applied with pertN = 0")
	}
}

func TestPointSize(t *testing.T) {
	tests := []struct {
		p    Particle
		want float64
	}{
		{Particle{Type: Star, Mag: 0.5}, 2},
		{Particle{Type: Dust, Mag: 0.1}, 35},
		{Particle{Type: Filament, Mag: 0.1}, 14},
	}
	for _, tt := range tests {
		if got := tt.p.PointSize(0, 0, 0, 70); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v PointSize = %v, want %v", tt.p.Type, got, tt.want)
		}
	}

	// on the minor axis the probe orbit coincides, giving the largest glow
	glow := Particle{Type: H2Glow, A: 5000, B: 4000, Theta0: 90}
	if got := glow.PointSize(0, 0, 0, 70); math.Abs(got-50) > 1e-6 {
		t.Errorf("H2 glow PointSize = %v, want 50", got)
	}
	core := glow
	core.Type = H2Core
	if got := core.PointSize(0, 0, 0, 70); math.Abs(got-5) > 1e-6 {
		t.Errorf("H2 core PointSize = %v, want 5", got)
	}

	// on the major axis the probe is a full offset away
	glow.Theta0 = 0
	if got := glow.PointSize(0, 0, 0, 70); got != 0 {
		t.Errorf("H2 glow PointSize on major axis = %v, want 0", got)
	}
}

func TestBlackbody(t *testing.T) {
	tests := []struct {
		kelvin float64
		want   int
	}{
		{0, 0},
		{1000, 0},
		{5500, 128},
		{9999, 255},
		{10000, 255},
		{50000, 255},
	}
	for _, tt := range tests {
		if got := BlackbodyIndex(tt.kelvin); got != tt.want {
			t.Errorf("BlackbodyIndex(%v) = %d, want %d", tt.kelvin, got, tt.want)
		}
	}

	cool := ColorFromTemperature(2000)
	hot := ColorFromTemperature(9500)
	if !(cool.R > cool.B) {
		t.Errorf("2000K should be red dominated: %v", cool.Hex())
	}
	if !(hot.B > cool.B) {
		t.Errorf("9500K should be bluer than 2000K: %v vs %v", hot.Hex(), cool.Hex())
	}
	for i, c := range blackbody {
		if !c.IsValid() {
			t.Fatalf("blackbody[%d] = %v out of gamut", i, c)
		}
	}
}

func TestBlackbodyFollowsPlanckianTable(t *testing.T) {
	first := ColorFromTemperature(MinTemperature)
	if first.R != 1 || first.G != 0 || first.B != 0 {
		t.Errorf("ColorFromTemperature(%v) = %+v, want pure red", MinTemperature, first)
	}

	end := planckian[len(planckian)-1]
	got := blackbody[blackbodySize-1]
	if math.Abs(got.R-end[0]) > 1e-12 || math.Abs(got.G-end[1]) > 1e-12 || math.Abs(got.B-end[2]) > 1e-12 {
		t.Errorf("last entry = %+v, want %v", got, end)
	}

	for i := 1; i < blackbodySize; i++ {
		if blackbody[i].B < blackbody[i-1].B {
			t.Fatalf("blue falls between entries %d and %d", i-1, i)
		}
	}
}

func TestVertices(t *testing.T) {
	buf := Buffer{
		BlackHole,
		{A: 10, B: 8, Temp: 4000, Mag: 0.3, Type: Star},
		{A: 20, B: 18, Temp: 7000, Mag: 0.1, Type: H2Core},
	}

	v := buf.Vertices()
	if len(v) != 2 {
		t.Fatalf("len(Vertices()) = %d, want 2", len(v))
	}
	if v[1].Type != float32(H2Core) || v[1].Color[3] != 1 {
		t.Errorf("vertex = %+v", v[1])
	}
	if got := v[0].Particle(); got.A != 10 || got.Type != Star {
		t.Errorf("Particle() = %+v", got)
	}
}
