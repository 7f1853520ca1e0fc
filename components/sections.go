package components

import (
	"github.com/automoto/cinescroll/ui"
	"github.com/yohamta/donburi"
)

// SectionsData holds the static content laid out after the sticky region.
type SectionsData struct {
	UI *ui.SectionsUI
}

var Sections = donburi.NewComponentType[SectionsData]()
