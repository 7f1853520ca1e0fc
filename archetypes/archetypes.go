package archetypes

import (
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Experience is the scroll-driven frame sequence with its overlays
	Experience = newArchetype(
		tags.Experience,
		components.Input,
		components.Settings,
		components.Viewport,
		components.Scroll,
		components.Smoothing,
		components.Frames,
		components.Surface,
		components.Overlay,
		components.Hint,
		components.Sections,
	)
	// LoadingScreen shows load progress while frames are fetched
	LoadingScreen = newArchetype(
		tags.Loading,
		components.Input,
		components.Settings,
		components.Viewport,
		components.Frames,
		components.Loading,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
