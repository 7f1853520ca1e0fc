package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HintData animates the scroll hint until the first scroll.
type HintData struct {
	Hidden bool
	Bob    *gween.Sequence // 0 -> 1 -> 0, looped
	Phase  float32         // Current value of Bob
}

var Hint = donburi.NewComponentType[HintData]()
