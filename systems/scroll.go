package systems

import (
	"math"

	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll turns this tick's accumulated input into a document offset
// and recomputes raw progress once, however many events arrived.
// Must run AFTER UpdateInput and UpdateViewport.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(entry)
	input := getOrCreateInput(ecs)
	vp, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(vp)

	if viewport.Resized || scroll.ContainerHeight == 0 {
		layoutScroll(scroll, viewport.Height, sectionsHeight(ecs))
	}
	applyScroll(scroll, input.ScrollDelta, input.Jump, viewport.Height)
	input.ScrollDelta = 0
	input.Jump = 0
}

// layoutScroll sizes the virtual document for a viewport height. Progress
// inside the sticky region is kept across resizes.
func layoutScroll(s *components.ScrollData, viewportHeight, sectionsHeight float64) {
	if viewportHeight <= 0 {
		s.ContainerHeight, s.Extent, s.DocumentHeight = 0, 0, sectionsHeight
		s.Offset, s.Progress = 0, 0
		return
	}
	inside := s.Offset <= s.Extent
	progress := s.Progress

	s.ContainerHeight = cfg.Scroll.Screens * viewportHeight
	s.Extent = s.ContainerHeight - viewportHeight
	s.DocumentHeight = s.ContainerHeight + sectionsHeight

	if inside {
		s.Offset = progress * s.Extent
	}
}

// applyScroll moves the offset by delta (or to an end when jump is set),
// clamps it to the document and updates progress and the scrolled latch.
func applyScroll(s *components.ScrollData, delta float64, jump int, viewportHeight float64) {
	switch {
	case jump < 0:
		s.Offset = 0
	case jump > 0:
		s.Offset = s.MaxOffset(viewportHeight)
	default:
		if !math.IsNaN(delta) && !math.IsInf(delta, 0) {
			s.Offset += delta
		}
	}
	s.Offset = motion.Clamp(s.Offset, 0, s.MaxOffset(viewportHeight))
	s.Progress = motion.ScrollProgress(s.Offset, 0, s.Extent)

	if !s.HasScrolled && s.Progress > cfg.Scroll.ScrolledThreshold {
		s.HasScrolled = true
	}
}
