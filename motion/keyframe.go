package motion

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// Keyframe is a control point of a piecewise curve.
type Keyframe struct {
	At    float64
	Value float64
}

// Curve is a piecewise function over sorted keyframes. Between two
// keyframes the value is interpolated with Ease (linear when nil); outside
// the first/last keyframe the value is held constant.
type Curve struct {
	Keys []Keyframe
	Ease ease.TweenFunc
}

// NewCurve builds a linear curve. Keyframes are sorted by position; equal
// positions keep their given order and produce a step.
func NewCurve(keys ...Keyframe) Curve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return Curve{Keys: sorted}
}

// WithEase returns a copy of the curve using fn for every segment.
func (c Curve) WithEase(fn ease.TweenFunc) Curve {
	c.Ease = fn
	return c
}

// At samples the curve.
func (c Curve) At(p float64) float64 {
	n := len(c.Keys)
	if n == 0 {
		return 0
	}
	if math.IsNaN(p) || p <= c.Keys[0].At {
		return c.Keys[0].Value
	}
	if p >= c.Keys[n-1].At {
		return c.Keys[n-1].Value
	}

	for i := 1; i < n; i++ {
		b := c.Keys[i]
		if p > b.At {
			continue
		}
		a := c.Keys[i-1]
		span := b.At - a.At
		if span <= 0 {
			return b.Value
		}
		t := (p - a.At) / span
		if c.Ease != nil {
			return float64(c.Ease(float32(t), float32(a.Value), float32(b.Value-a.Value), 1))
		}
		return Lerp(a.Value, b.Value, t)
	}
	return c.Keys[n-1].Value
}

// Span returns the first and last keyframe positions.
func (c Curve) Span() (from, to float64) {
	if len(c.Keys) == 0 {
		return 0, 0
	}
	return c.Keys[0].At, c.Keys[len(c.Keys)-1].At
}
