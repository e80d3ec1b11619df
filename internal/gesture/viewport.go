// Package gesture turns pointer samples into a composed 2D affine transform
// (translation, uniform scale, rotation) and converts between device
// coordinates and the normalized render space.
package gesture

// Near is the distance of the render-space near plane; render coordinates
// span [-Near*Ratio, Near*Ratio] horizontally and [-Near, Near] vertically.
const Near = 3.0

// Viewport is the device surface size in device units.
type Viewport struct {
	Width  float64
	Height float64
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Ratio returns width/height, or 1 for an invalid viewport.
func (v Viewport) Ratio() float64 {
	if !v.Valid() {
		return 1
	}
	return v.Width / v.Height
}

// Centre returns the device coordinates of the viewport centre.
func (v Viewport) Centre() (x, y float64) {
	return v.Width / 2, v.Height / 2
}

// NormalizeX maps a device x coordinate (or x translation) to render space.
// Render space straddles zero at the device centre; the left and right halves
// are measured from their own edges.
func (v Viewport) NormalizeX(x float64) float64 {
	half := v.Width / 2
	var t float64
	if x < half {
		t = -1 + x/half
	} else {
		t = (x - half) / half
	}
	return -t * Near * v.Ratio()
}

// NormalizeY maps a device y coordinate (or y translation) to render space.
// Device y grows downwards, render y grows upwards.
func (v Viewport) NormalizeY(y float64) float64 {
	half := v.Height / 2
	var t float64
	if y < half {
		t = 1 - y/half
	} else {
		t = -(y - half) / half
	}
	return t * Near
}

// DenormalizeX is the inverse of NormalizeX.
func (v Viewport) DenormalizeX(x float64) float64 {
	return (1 - x/(Near*v.Ratio())) * v.Width / 2
}

// DenormalizeY is the inverse of NormalizeY.
func (v Viewport) DenormalizeY(y float64) float64 {
	return (1 - y/Near) * v.Height / 2
}
