package systems

import (
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// sectionsHeight is the logical height of the content after the sticky
// region, measured from the laid out widgets when they exist.
func sectionsHeight(ecs *ecs.ECS) float64 {
	if entry, ok := components.Sections.First(ecs.World); ok {
		if sec := components.Sections.Get(entry); sec.UI != nil {
			return sec.UI.Height()
		}
	}
	return cfg.Sections.Height()
}

// UpdateSections relays out the sections on resize and updates the widgets.
// Must run BEFORE UpdateScroll so the document height is current.
func UpdateSections(ecs *ecs.ECS) {
	entry, ok := components.Sections.First(ecs.World)
	if !ok {
		return
	}
	sec := components.Sections.Get(entry)
	vp := components.Viewport.Get(entry)
	if vp.Empty() {
		return
	}
	if sec.UI == nil {
		sec.UI = ui.NewSectionsUI(vp.Width, vp.Density)
	} else if vp.Resized {
		sec.UI.Resize(vp.Width, vp.Density)
	}
	sec.UI.Update()
}

// DrawSections draws the sections where they sit in the document relative
// to the current offset.
func DrawSections(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Sections.First(ecs.World)
	if !ok {
		return
	}
	sec := components.Sections.Get(entry)
	scroll := components.Scroll.Get(entry)
	if sec.UI == nil {
		return
	}
	sec.UI.Draw(screen, scroll.ContainerHeight-scroll.Offset)
}

// ReleaseSections frees the sections canvas.
func ReleaseSections(sec *components.SectionsData) {
	if sec.UI != nil {
		sec.UI.Close()
		sec.UI = nil
	}
}
