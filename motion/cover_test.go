package motion

import (
	"math"
	"testing"
)

func TestCoverFitCoversViewport(t *testing.T) {
	tests := []struct {
		iw, ih, vw, vh float64
	}{
		{1920, 1080, 1280, 720},
		{1920, 1080, 720, 1280},
		{800, 800, 1440, 900},
		{1080, 1920, 1920, 1080},
		{100, 50, 3, 1000},
	}
	for _, tt := range tests {
		r := CoverFit(tt.iw, tt.ih, tt.vw, tt.vh)
		const eps = 1e-9
		if r.W < tt.vw-eps || r.H < tt.vh-eps {
			t.Errorf("CoverFit(%v) = %+v does not cover viewport", tt, r)
		}
		if math.Abs(r.X-(tt.vw-r.W)/2) > eps || math.Abs(r.Y-(tt.vh-r.H)/2) > eps {
			t.Errorf("CoverFit(%v) = %+v not centered", tt, r)
		}
		if math.Abs(r.W/r.H-tt.iw/tt.ih) > 1e-9 {
			t.Errorf("CoverFit(%v) = %+v changed aspect ratio", tt, r)
		}
		// one axis fits exactly, the other overflows
		if math.Abs(r.W-tt.vw) > eps && math.Abs(r.H-tt.vh) > eps {
			t.Errorf("CoverFit(%v) = %+v over-scaled", tt, r)
		}
	}
}

func TestCoverFitExample(t *testing.T) {
	r := CoverFit(1920, 1080, 1000, 1000)
	want := Rect{X: -388.8888888888889, Y: 0, W: 1777.7777777777778, H: 1000}
	if math.Abs(r.X-want.X) > 1e-9 || math.Abs(r.Y-want.Y) > 1e-9 || math.Abs(r.W-want.W) > 1e-9 || math.Abs(r.H-want.H) > 1e-9 {
		t.Errorf("CoverFit = %+v, want %+v", r, want)
	}
}

func TestCoverFitDegenerate(t *testing.T) {
	if r := CoverFit(0, 100, 100, 100); !r.Empty() {
		t.Errorf("zero image width gave %+v", r)
	}
	if r := CoverFit(100, 100, 100, 0); !r.Empty() {
		t.Errorf("zero viewport height gave %+v", r)
	}
}
