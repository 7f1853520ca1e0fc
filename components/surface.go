package components

import (
	"github.com/automoto/cinescroll/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SurfaceData holds the frame renderer and its offscreen backing image.
type SurfaceData struct {
	Renderer *surface.Renderer
	Backing  *ebiten.Image
	Density  float64
}

var Surface = donburi.NewComponentType[SurfaceData]()
