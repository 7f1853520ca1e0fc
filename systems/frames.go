package systems

import (
	"github.com/automoto/cinescroll/components"
	"github.com/automoto/cinescroll/frames"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrames applies the fetches that finished since the last tick.
func UpdateFrames(ecs *ecs.ECS) {
	entry, ok := components.Frames.First(ecs.World)
	if !ok {
		return
	}
	fr := components.Frames.Get(entry)
	if fr.Loader != nil {
		fr.Loader.Drain()
	}
}

// UploadFrame returns a settle hook that moves each decoded frame onto the
// GPU and frees the CPU copy. It runs on the game goroutine.
func UploadFrame(fr *components.FramesData) func(frames.Settlement) {
	return func(s frames.Settlement) {
		if s.Err != nil || s.Image == nil {
			return
		}
		if s.Index < 0 || s.Index >= len(fr.Textures) {
			return
		}
		fr.Textures[s.Index] = ebiten.NewImageFromImage(s.Image)
		fr.Sequence.ReleaseImage(s.Index)
	}
}

// ReleaseFrames cancels outstanding fetches and frees every texture.
func ReleaseFrames(fr *components.FramesData) {
	if fr.Loader != nil {
		fr.Loader.Close()
	}
	for i, tex := range fr.Textures {
		if tex != nil {
			tex.Deallocate()
			fr.Textures[i] = nil
		}
	}
}
