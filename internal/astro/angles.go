// Package astro provides the galactic dynamics model: unit constants, mass
// distributions, rotation curves and angle helpers.
package astro

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle360 wraps an angle to the range [0, 360).
func NormalizeAngle360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeAngle180 wraps an angle to the range (-180, 180].
func NormalizeAngle180(deg float64) float64 {
	deg = NormalizeAngle360(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}
