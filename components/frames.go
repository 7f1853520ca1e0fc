package components

import (
	"github.com/automoto/cinescroll/frames"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// FramesData owns the frame sequence, its loader and the GPU textures of
// loaded slots.
type FramesData struct {
	Loader   *frames.Loader
	Sequence *frames.Sequence
	Textures []*ebiten.Image
}

var Frames = donburi.NewComponentType[FramesData]()
