package track

import "math"

// Sensitivity is the target maximum number of trajectory points drawn
// per track. Longer tracks are decimated towards this budget.
const Sensitivity = 190.0

// Stride returns the observation step for a track of n observations,
// never less than 1.
func Stride(n int) int {
	step := int(math.Ceil(float64(n) / Sensitivity))
	if step < 1 {
		step = 1
	}
	return step
}

// SampleTrajectory reduces the observations to ground points at a fixed
// stride: indices 0, step, 2*step, ... in their original order. The
// final observation is included only when it lands on the stride, so a
// long track's drawn path can stop short of its true end point. That is
// deliberate; do not switch to inclusive-endpoint sampling without a
// product decision.
func SampleTrajectory(observations []Observation) []GroundPoint {
	step := Stride(len(observations))
	points := make([]GroundPoint, 0, (len(observations)+step-1)/step)
	for i := 0; i < len(observations); i += step {
		points = append(points, observations[i].BoundingBox.GroundIntersection())
	}
	return points
}
