// Package motion holds the pure math behind the scroll-driven sequence:
// progress normalization, spring smoothing, keyframe curves, frame
// selection and cover-fit placement. Nothing in here touches ebiten.
package motion

import "math"

// ScrollProgress maps a scroll offset inside a container to [0,1].
// A container with no scrollable extent reports 0.
func ScrollProgress(offset, containerStart, extent float64) float64 {
	if extent <= 0 || math.IsNaN(extent) || math.IsNaN(offset) {
		return 0
	}
	return Clamp01((offset - containerStart) / extent)
}

// FrameIndex selects the frame for a (smoothed) progress value out of n frames.
func FrameIndex(p float64, n int) int {
	if n <= 0 || math.IsNaN(p) {
		return 0
	}
	idx := int(math.Floor(p * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
