package scene

import "math"

const (
	zoomFactor  = 0.1
	zoomEpsilon = 1e-4
)

// ZoomLevel returns the discrete zoom level of scale. Levels accumulate
// zoomFactor·n per step away from 1 (1, 1.1, 1.3, 1.6, 2, ... upwards and
// 1, 0.9, 0.7, 0.4, ... downwards). in selects the comparison used when
// scale sits exactly on a level boundary, so repeated zooming never stalls.
// Non-positive, NaN and infinite scales report level 1.
func ZoomLevel(scale float64, in bool) int {
	total := 1.0
	level := 0
	equal := func() bool { return math.Abs(total-scale) < zoomEpsilon }

	if !(scale > 0) || math.IsInf(scale, 1) || equal() {
		return 1
	}

	for {
		if scale > 1 {
			if total > scale || (!in && equal()) {
				break
			}
			level++
			total += zoomFactor * float64(level)
		} else {
			if total < scale || (in && equal()) {
				break
			}
			level++
			total -= zoomFactor * float64(level)
		}
	}
	return level
}

// zoomStep is the scale change of one zoom action at the current level.
func (s *Scene) zoomStep(in bool) float64 {
	level := ZoomLevel(s.transform.Decompose().Scale, in)
	return s.cfg.ZoomStep * s.fitScale() * math.Abs(float64(level)) / 2
}

// ZoomIn increases the scale by one quantized step around the viewport
// centre.
func (s *Scene) ZoomIn() { s.zoomBy(s.zoomStep(true)) }

// ZoomOut decreases the scale by one quantized step around the viewport
// centre.
func (s *Scene) ZoomOut() { s.zoomBy(-s.zoomStep(false)) }

// ZoomNormal restores the fitted scale, keeping rotation and pan.
func (s *Scene) ZoomNormal() {
	cx, cy := s.vp.Centre()
	prev := s.transform.Decompose().Scale
	if prev <= 0 {
		return
	}
	s.transform.PostScale(s.fitScale()/prev, cx, cy)
}

// ResetView restores the default fit-and-centre transform.
func (s *Scene) ResetView() {
	if s.vp.Valid() {
		s.applyDefaultTransform()
	}
}

// zoomBy sets the scale to the current scale plus delta, clamped to
// [ZoomMin, ZoomMax].
func (s *Scene) zoomBy(delta float64) {
	cx, cy := s.vp.Centre()
	prev := s.transform.Decompose().Scale
	if prev <= 0 {
		return
	}
	target := s.clampScale(prev + delta)
	s.transform.PostScale(target/prev, cx, cy)
}
