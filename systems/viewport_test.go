package systems

import (
	"testing"

	"github.com/automoto/cinescroll/components"
	"github.com/automoto/cinescroll/surface"
)

func TestApplyViewport(t *testing.T) {
	vp := &components.ViewportData{}

	applyViewport(vp, surface.Viewport{Width: 1280, Height: 720, Density: 1})
	if !vp.Resized || vp.OrientationFlipped {
		t.Fatalf("first measure: resized %v flipped %v", vp.Resized, vp.OrientationFlipped)
	}

	applyViewport(vp, surface.Viewport{Width: 1280, Height: 720, Density: 1})
	if vp.Resized {
		t.Error("unchanged viewport reported a resize")
	}

	applyViewport(vp, surface.Viewport{Width: 1280, Height: 720, Density: 2})
	if !vp.Resized || vp.OrientationFlipped {
		t.Errorf("density change: resized %v flipped %v", vp.Resized, vp.OrientationFlipped)
	}

	applyViewport(vp, surface.Viewport{Width: 720, Height: 1280, Density: 2})
	if !vp.OrientationFlipped {
		t.Error("portrait flip not reported")
	}

	applyViewport(vp, surface.Viewport{})
	if vp.OrientationFlipped {
		t.Error("collapsing to zero counted as a flip")
	}
}
