package mathx

import "math"

// Clamp01 clamps v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep applies the cubic easing 3t^2 - 2t^3 after clamping t to [0,1].
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// SoftClamp compresses v through a tanh soft limit and scales the result by
// amplitude. Unlike a hard clamp, extreme inputs roll off smoothly toward
// +-amplitude instead of flattening.
func SoftClamp(v, amplitude, k float64) float64 {
	return amplitude * math.Tanh(v*k)
}
