package components

import (
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/timeline"
	"github.com/yohamta/donburi"
)

// OverlayData is the scene set and the element states sampled this tick.
type OverlayData struct {
	Scenes    *cfg.SceneSet
	Scheduler *timeline.Scheduler
	Samples   []timeline.Sample
}

var Overlay = donburi.NewComponentType[OverlayData]()
