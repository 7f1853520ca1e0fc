package components

import (
	"github.com/automoto/cinescroll/motion"
	"github.com/yohamta/donburi"
)

// SmoothingData follows raw progress with a spring for the frame path.
type SmoothingData struct {
	Spring     *motion.Smoother
	FrameIndex int
}

var Smoothing = donburi.NewComponentType[SmoothingData]()
