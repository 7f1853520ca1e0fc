package main

import (
	"flag"
	"log"
	"math"

	"github.com/automoto/cinescroll/assets"
	"github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/fonts"
	"github.com/automoto/cinescroll/scenes"
	"github.com/automoto/cinescroll/surface"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene    Scene
	viewport surface.Viewport
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Viewport is the logical window size and density from the last layout.
func (g *Game) Viewport() surface.Viewport {
	return g.viewport
}

func NewGame(sceneSet *config.SceneSet) *Game {
	g := &Game{
		viewport: surface.Viewport{
			Width:   float64(config.C.Width),
			Height:  float64(config.C.Height),
			Density: 1,
		},
	}
	g.scene = scenes.NewLoadingScene(g, sceneSet)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := g.LayoutF(float64(width), float64(height))
	return int(w), int(h)
}

// LayoutF keeps the screen in physical pixels so frames and text are drawn
// at full resolution; systems work in logical pixels scaled by density.
func (g *Game) LayoutF(width, height float64) (float64, float64) {
	density := 1.0
	if m := ebiten.Monitor(); m != nil {
		density = m.DeviceScaleFactor()
	}
	g.viewport = surface.Viewport{Width: width, Height: height, Density: density}.Normalized()
	return math.Ceil(width * g.viewport.Density), math.Ceil(height * g.viewport.Density)
}

func main() {
	flag.StringVar(&config.Sequence.Dir, "frames", config.Sequence.Dir, "Directory holding the frame sequence")
	flag.StringVar(&config.Sequence.Pattern, "pattern", config.Sequence.Pattern, "Frame file name template, indexed from 0")
	flag.IntVar(&config.Sequence.Count, "count", config.Sequence.Count, "Number of frames")
	flag.IntVar(&config.Sequence.Concurrency, "concurrency", config.Sequence.Concurrency, "Concurrent frame fetches (0 = from CPU count)")
	flag.StringVar(&config.Overlay.ScenesFile, "scenes", config.Overlay.ScenesFile, "YAML file overriding the scene overlays")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "Show the debug overlay")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", config.Debug.Fullscreen, "Start fullscreen")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}

	sceneSet, err := config.LoadScenes(config.Overlay.ScenesFile)
	if err != nil {
		log.Printf("Warning: Could not load scenes, using defaults: %v", err)
		sceneSet = config.DefaultScenes()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Debug.Fullscreen)

	if err := ebiten.RunGame(NewGame(sceneSet)); err != nil {
		log.Fatal(err)
	}
}
