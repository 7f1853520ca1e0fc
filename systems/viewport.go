package systems

import (
	"github.com/automoto/cinescroll/components"
	"github.com/automoto/cinescroll/surface"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateViewport returns a system that copies the window geometry into
// the Viewport component and flags resizes and orientation flips.
// Must run FIRST in the system order.
func NewUpdateViewport(measure func() surface.Viewport) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		entry, ok := components.Viewport.First(ecs.World)
		if !ok {
			return
		}
		vp := components.Viewport.Get(entry)
		next := measure().Normalized()
		applyViewport(vp, next)
	}
}

func applyViewport(vp *components.ViewportData, next surface.Viewport) {
	prev := vp.Viewport
	vp.Resized = next != prev
	vp.OrientationFlipped = vp.Resized && !prev.Empty() && !next.Empty() &&
		prev.Landscape() != next.Landscape()
	vp.Viewport = next
}
