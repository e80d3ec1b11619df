package galaxy

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Blackbody lookup table range.
const (
	MinTemperature = 1000.0
	MaxTemperature = 10000.0
	blackbodySize  = 256
)

var blackbody = buildBlackbody()

// buildBlackbody resamples the planckian table to blackbodySize entries,
// blending neighbouring samples.
func buildBlackbody() [blackbodySize]colorful.Color {
	var lut [blackbodySize]colorful.Color
	last := len(planckian) - 1
	for i := range lut {
		u := float64(i) * float64(last) / (blackbodySize - 1)
		j := min(int(u), last-1)
		lut[i] = sample(j).BlendRgb(sample(j+1), u-float64(j)).Clamped()
	}
	return lut
}

func sample(i int) colorful.Color {
	c := planckian[i]
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// BlackbodyIndex returns the lookup table slot for temperature kelvin.
func BlackbodyIndex(kelvin float64) int {
	i := int(math.Floor((kelvin - MinTemperature) / (MaxTemperature - MinTemperature) * blackbodySize))
	return min(max(i, 0), blackbodySize-1)
}

// ColorFromTemperature returns the tabulated black body colour.
func ColorFromTemperature(kelvin float64) colorful.Color {
	return blackbody[BlackbodyIndex(kelvin)]
}
