package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cinescroll/archetypes"
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/motion"
	"github.com/automoto/cinescroll/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ExperienceScene is the scroll-scrubbed frame sequence with its scene
// overlays, the scroll hint and the static sections below.
type ExperienceScene struct {
	ecs    *ecs.ECS
	host   Host
	frames *components.FramesData
	scenes *cfg.SceneSet
	once   sync.Once
	closed bool
}

// NewExperienceScene takes ownership of loaded frames.
func NewExperienceScene(host Host, fr *components.FramesData, scenes *cfg.SceneSet) *ExperienceScene {
	if scenes == nil {
		scenes = cfg.DefaultScenes()
	}
	return &ExperienceScene{host: host, frames: fr, scenes: scenes}
}

func (es *ExperienceScene) Update() error {
	es.once.Do(es.configure)
	es.ecs.Update()

	if systems.QuitRequested(es.ecs) {
		es.Close()
		return ebiten.Termination
	}
	return nil
}

func (es *ExperienceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

// Close releases the renderer, the frame textures and the sections canvas.
// Calling it more than once is a no-op.
func (es *ExperienceScene) Close() {
	if es.closed || es.ecs == nil {
		return
	}
	es.closed = true

	entry, ok := components.Surface.First(es.ecs.World)
	if !ok {
		return
	}
	sd := components.Surface.Get(entry)
	if sd.Renderer != nil {
		sd.Renderer.Close()
	}
	if sd.Backing != nil {
		sd.Backing.Deallocate()
		sd.Backing = nil
	}
	systems.ReleaseFrames(components.Frames.Get(entry))
	systems.ReleaseSections(components.Sections.Get(entry))
}

func (es *ExperienceScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())

	es.ecs.AddSystem(systems.NewUpdateViewport(es.host.Viewport))
	es.ecs.AddSystem(systems.UpdateInput)
	es.ecs.AddSystem(systems.UpdateSettings)
	es.ecs.AddSystem(systems.UpdateFrames)
	es.ecs.AddSystem(systems.UpdateSections)
	es.ecs.AddSystem(systems.UpdateScroll)
	es.ecs.AddSystem(systems.UpdateSmoothing)
	es.ecs.AddSystem(systems.UpdateSurface)
	es.ecs.AddSystem(systems.UpdateOverlay)
	es.ecs.AddSystem(systems.UpdateHint)

	// Frames at the bottom, overlays and hint on top
	es.ecs.AddRenderer(cfg.Default, systems.DrawSurface)
	es.ecs.AddRenderer(cfg.Default, systems.DrawSections)
	es.ecs.AddRenderer(cfg.Default, systems.DrawOverlays)
	es.ecs.AddRenderer(cfg.Default, systems.DrawHint)
	es.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	entry := archetypes.Experience.Spawn(es.ecs)

	components.Frames.SetValue(entry, *es.frames)

	components.Smoothing.SetValue(entry, components.SmoothingData{
		Spring: motion.NewSmoother(motion.SpringParams{
			Stiffness: cfg.Spring.Stiffness,
			Damping:   cfg.Spring.Damping,
			Mass:      cfg.Spring.Mass,
			RestDelta: cfg.Spring.RestDelta,
			FPS:       ebiten.TPS(),
		}),
	})

	ov := components.OverlayData{Scenes: es.scenes}
	sched, err := es.scenes.Scheduler()
	if err != nil {
		log.Printf("Warning: scene overlays disabled: %v", err)
	} else {
		ov.Scheduler = sched
	}
	components.Overlay.SetValue(entry, ov)

	sd := components.Surface.Get(entry)
	sd.Renderer = systems.NewSurfaceRenderer(sd,
		components.Frames.Get(entry),
		components.Viewport.Get(entry))
}
