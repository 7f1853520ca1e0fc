package components

import (
	"github.com/automoto/cinescroll/surface"
	"github.com/yohamta/donburi"
)

// ViewportData mirrors the window's logical size and density. Written by
// the game loop from Layout, read by every system.
type ViewportData struct {
	surface.Viewport
	Resized            bool // Size or density changed this tick
	OrientationFlipped bool // Width/height aspect flipped this tick
}

var Viewport = donburi.NewComponentType[ViewportData]()
