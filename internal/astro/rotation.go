package astro

import "math"

// Unit conversions used by the galactic rotation model.
const (
	ParsecKm      = 3.08567758129e13 // kilometres per parsec
	SecondsPerYr  = 365.25 * 86400   // seconds per Julian year
	GravConstant  = 6.672e-11        // gravitational constant as used by the model
	velocityScale = 20000.0          // empirical km/s scale of the rotation curve
	centralMass   = 100.0            // point mass at the galactic centre
)

// Disc and halo density model parameters.
const (
	DiscThickness     = 2000.0 // parsec
	DiscCentreDensity = 1.0
	DiscScaleLength   = 2000.0 // radius where the disc density has dropped by 1/e
	HaloCentreDensity = 0.15
	HaloCoreRadius    = 2500.0
)

// DiscMass returns the enclosed mass of the exponential disc at radius r.
func DiscMass(r float64) float64 {
	return DiscCentreDensity * math.Exp(-r/DiscScaleLength) * (r * r) * math.Pi * DiscThickness
}

// HaloMass returns the enclosed mass of the dark matter halo at radius r.
func HaloMass(r float64) float64 {
	return HaloCentreDensity / (1 + math.Pow(r/HaloCoreRadius, 2)) * (4 * math.Pi * math.Pow(r, 3) / 3)
}

// VelocityWithDarkMatter returns the rotation curve velocity in km/s at radius r,
// including the halo mass. r == 0 yields 0.
func VelocityWithDarkMatter(r float64) float64 {
	if r == 0 {
		return 0
	}
	return velocityScale * math.Sqrt(GravConstant*(HaloMass(r)+DiscMass(r)+centralMass)/r)
}

// VelocityWithoutDarkMatter returns the rotation curve velocity in km/s at radius r
// from the disc mass alone. r == 0 yields 0.
func VelocityWithoutDarkMatter(r float64) float64 {
	if r == 0 {
		return 0
	}
	return velocityScale * math.Sqrt(GravConstant*(DiscMass(r)+centralMass)/r)
}

// RotationVelocity selects the mass model and returns km/s at radius r.
func RotationVelocity(r float64, darkMatter bool) float64 {
	if darkMatter {
		return VelocityWithDarkMatter(r)
	}
	return VelocityWithoutDarkMatter(r)
}

// AngularVelocity converts the linear rotation velocity at radius r (parsec)
// into degrees per year. Orbits at r == 0 do not move.
func AngularVelocity(r float64, darkMatter bool) float64 {
	v := RotationVelocity(r, darkMatter)
	if r == 0 || v == 0 {
		return 0
	}

	circumference := 2 * math.Pi * r * ParsecKm
	period := circumference / (v * SecondsPerYr)

	return 360 / period
}

// RotationCurve samples RotationVelocity at n evenly spaced radii in [0, maxRadius].
func RotationCurve(maxRadius float64, n int, darkMatter bool) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := maxRadius / float64(n-1)
	for i := range out {
		out[i] = RotationVelocity(step*float64(i), darkMatter)
	}
	return out
}
