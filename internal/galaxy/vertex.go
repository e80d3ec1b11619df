package galaxy

// Vertex is the per-particle record uploaded to a renderer: eight orbital
// attributes followed by an RGBA colour.
type Vertex struct {
	Theta0   float32
	VelTheta float32
	Tilt     float32
	A        float32
	B        float32
	Temp     float32
	Mag      float32
	Type     float32
	Color    [4]float32
}

// Vertices converts the buffer to vertex records. The sentinel is skipped.
func (b Buffer) Vertices() []Vertex {
	if len(b) < 2 {
		return nil
	}

	out := make([]Vertex, 0, len(b)-1)
	for _, p := range b[1:] {
		c := ColorFromTemperature(p.Temp)
		out = append(out, Vertex{
			Theta0:   float32(p.Theta0),
			VelTheta: float32(p.VelTheta),
			Tilt:     float32(p.Tilt),
			A:        float32(p.A),
			B:        float32(p.B),
			Temp:     float32(p.Temp),
			Mag:      float32(p.Mag),
			Type:     float32(p.Type),
			Color:    [4]float32{float32(c.R), float32(c.G), float32(c.B), 1},
		})
	}
	return out
}

// Particle decodes the orbital attributes of a vertex.
func (v Vertex) Particle() Particle {
	return Particle{
		Theta0:   float64(v.Theta0),
		VelTheta: float64(v.VelTheta),
		Tilt:     float64(v.Tilt),
		A:        float64(v.A),
		B:        float64(v.B),
		Temp:     float64(v.Temp),
		Mag:      float64(v.Mag),
		Type:     Type(v.Type),
	}
}
