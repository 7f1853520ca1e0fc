package systems

import (
	"github.com/automoto/cinescroll/components"
	"github.com/automoto/cinescroll/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSmoothing steps the progress spring and maps it to a frame index.
// Must run AFTER UpdateScroll.
func UpdateSmoothing(ecs *ecs.ECS) {
	entry, ok := components.Smoothing.First(ecs.World)
	if !ok {
		return
	}
	sm := components.Smoothing.Get(entry)
	scroll := components.Scroll.Get(entry)
	fr := components.Frames.Get(entry)

	sm.Spring.SetTarget(scroll.Progress)
	sm.Spring.Step()
	sm.FrameIndex = motion.FrameIndex(sm.Spring.Clamped(), fr.Sequence.Len())
}
