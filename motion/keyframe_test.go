package motion

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCurveInterpolation(t *testing.T) {
	c := NewCurve(
		Keyframe{At: 0.5, Value: 1},
		Keyframe{At: 0.2, Value: 0},
		Keyframe{At: 0.8, Value: 1},
		Keyframe{At: 1.0, Value: 0},
	)

	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.35, 0.5},
		{0.5, 1},
		{0.65, 1},
		{0.9, 0.5},
		{1, 0},
		{3, 0},
	}
	for _, tt := range tests {
		if got := c.At(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestCurveExtrapolatesConstant(t *testing.T) {
	c := NewCurve(Keyframe{At: 0.3, Value: 40}, Keyframe{At: 0.6, Value: -40})
	if got := c.At(-1); got != 40 {
		t.Errorf("before first keyframe = %v, want 40", got)
	}
	if got := c.At(2); got != -40 {
		t.Errorf("after last keyframe = %v, want -40", got)
	}
	if got := c.At(math.NaN()); got != 40 {
		t.Errorf("NaN = %v, want first value", got)
	}
}

func TestCurveStep(t *testing.T) {
	c := NewCurve(
		Keyframe{At: 0, Value: 0},
		Keyframe{At: 0.5, Value: 0},
		Keyframe{At: 0.5, Value: 1},
		Keyframe{At: 1, Value: 1},
	)
	if got := c.At(0.5); got != 0 && got != 1 {
		t.Errorf("At(0.5) = %v, want 0 or 1", got)
	}
	if got := c.At(0.51); got != 1 {
		t.Errorf("At(0.51) = %v, want 1", got)
	}
}

func TestCurveEmpty(t *testing.T) {
	var c Curve
	if got := c.At(0.4); got != 0 {
		t.Errorf("empty curve = %v", got)
	}
}

func TestCurveEase(t *testing.T) {
	c := NewCurve(Keyframe{At: 0, Value: 0}, Keyframe{At: 1, Value: 10}).WithEase(ease.InOutSine)
	if got := c.At(0.5); math.Abs(got-5) > 1e-4 {
		t.Errorf("eased midpoint = %v, want 5", got)
	}
	if got := c.At(0.25); got >= 2.5 {
		t.Errorf("ease-in should lag linear at 0.25, got %v", got)
	}
	if got := c.At(1); got != 10 {
		t.Errorf("eased end = %v", got)
	}
}
