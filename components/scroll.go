package components

import (
	"github.com/yohamta/donburi"
)

// ScrollData is the virtual document position. The sticky region spans
// [0, ContainerHeight); static sections follow it.
type ScrollData struct {
	Offset          float64 // Top of the viewport in document coordinates
	ContainerHeight float64
	Extent          float64 // ContainerHeight minus the viewport height
	DocumentHeight  float64 // Sticky region plus sections

	Progress    float64 // Raw scroll progress in [0,1]
	HasScrolled bool    // Latches once progress passes the threshold
}

var Scroll = donburi.NewComponentType[ScrollData]()

// MaxOffset is the furthest the viewport top can travel.
func (s *ScrollData) MaxOffset(viewportHeight float64) float64 {
	if m := s.DocumentHeight - viewportHeight; m > 0 {
		return m
	}
	return 0
}

// StickyShift is how far the sticky surface has scrolled up, 0 while the
// viewport is still inside the container.
func (s *ScrollData) StickyShift() float64 {
	if s.Offset > s.Extent {
		return s.Offset - s.Extent
	}
	return 0
}
