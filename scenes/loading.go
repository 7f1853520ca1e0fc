package scenes

import (
	"context"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/cinescroll/archetypes"
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/frames"
	"github.com/automoto/cinescroll/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadingScene fetches the frame sequence and shows progress until every
// frame has settled, then hands the frames to the experience.
type LoadingScene struct {
	ecs    *ecs.ECS
	host   Host
	fetch  frames.Fetcher
	scenes *cfg.SceneSet
	cancel context.CancelFunc
	frames *components.FramesData
	once   sync.Once
}

// NewLoadingScene creates a loading scene reading frames from the
// configured sequence directory.
func NewLoadingScene(host Host, scenes *cfg.SceneSet) *LoadingScene {
	fetch := frames.NewFSFetcher(os.DirFS(cfg.Sequence.Dir), cfg.Sequence.Pattern)
	return NewLoadingSceneWithFetcher(host, scenes, fetch)
}

// NewLoadingSceneWithFetcher creates a loading scene with a custom frame
// source.
func NewLoadingSceneWithFetcher(host Host, scenes *cfg.SceneSet, fetch frames.Fetcher) *LoadingScene {
	return &LoadingScene{host: host, fetch: fetch, scenes: scenes}
}

func (ls *LoadingScene) Update() error {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	if systems.QuitRequested(ls.ecs) {
		ls.Close()
		return ebiten.Termination
	}

	entry, ok := components.Loading.First(ls.ecs.World)
	if ok && components.Loading.Get(entry).Ready {
		// every slot has settled so the loader no longer writes to frames
		ls.host.ChangeScene(NewExperienceScene(ls.host, ls.frames, ls.scenes))
	}
	return nil
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

// Close stops outstanding fetches and frees uploaded frames.
func (ls *LoadingScene) Close() {
	if ls.cancel != nil {
		ls.cancel()
	}
	if ls.frames != nil {
		systems.ReleaseFrames(ls.frames)
	}
}

func (ls *LoadingScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	ls.ecs.AddSystem(systems.NewUpdateViewport(ls.host.Viewport))
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.UpdateSettings)
	ls.ecs.AddSystem(systems.UpdateFrames)
	ls.ecs.AddSystem(systems.UpdateLoading)

	ls.ecs.AddRenderer(cfg.Default, systems.DrawLoading)
	ls.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	archetypes.LoadingScreen.Spawn(ls.ecs)

	seq := frames.NewSequence(cfg.Sequence.Count)
	ls.frames = &components.FramesData{
		Sequence: seq,
		Textures: make([]*ebiten.Image, seq.Len()),
	}
	ls.frames.Loader = frames.NewLoader(seq, ls.fetch, frames.Options{
		Concurrency: cfg.Sequence.Concurrency,
		OnSettle:    systems.UploadFrame(ls.frames),
	})

	entry, _ := components.Frames.First(ls.ecs.World)
	components.Frames.SetValue(entry, *ls.frames)

	var ctx context.Context
	ctx, ls.cancel = context.WithCancel(context.Background())
	if err := ls.frames.Loader.Start(ctx); err != nil {
		log.Printf("Warning: frame loader did not start: %v", err)
	}
}
