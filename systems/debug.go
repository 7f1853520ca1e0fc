package systems

import (
	"fmt"

	"github.com/automoto/cinescroll/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints progress, smoothing, frame and load stats in the
// top-left corner when the debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())

	if entry, ok := components.Scroll.First(ecs.World); ok {
		s := components.Scroll.Get(entry)
		msg += fmt.Sprintf("offset %.0f / %.0f  progress %.4f  scrolled %v\n",
			s.Offset, s.DocumentHeight, s.Progress, s.HasScrolled)
	}
	if entry, ok := components.Smoothing.First(ecs.World); ok {
		sm := components.Smoothing.Get(entry)
		msg += fmt.Sprintf("smoothed %.4f  v %.4f  rest %v  frame %d\n",
			sm.Spring.Position(), sm.Spring.Velocity(), sm.Spring.AtRest(), sm.FrameIndex)
	}
	if entry, ok := components.Frames.First(ecs.World); ok {
		fr := components.Frames.Get(entry)
		seq := fr.Sequence
		msg += fmt.Sprintf("frames %d loaded  %d failed  %d%%\n", seq.Loaded(), seq.Failed(), seq.Percent())
	}
	if entry, ok := components.Viewport.First(ecs.World); ok {
		vp := components.Viewport.Get(entry)
		msg += fmt.Sprintf("viewport %.0fx%.0f @%.2f\n", vp.Width, vp.Height, vp.Density)
	}
	if entry, ok := components.Overlay.First(ecs.World); ok {
		ov := components.Overlay.Get(entry)
		for _, s := range ov.Samples {
			msg += fmt.Sprintf("scene %d  %v\n", s.Scene, s.Elements)
		}
	}

	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
