package systems

import (
	"log"
	"math"

	"github.com/automoto/cinescroll/assets"
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/motion"
	"github.com/automoto/cinescroll/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ebitenBackend draws frame textures into an offscreen image sized in
// physical pixels.
type ebitenBackend struct {
	surface *components.SurfaceData
	frames  *components.FramesData
	op      ebiten.DrawImageOptions
}

func (b *ebitenBackend) Allocate(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if b.surface.Backing != nil {
		bounds := b.surface.Backing.Bounds()
		if bounds.Dx() == w && bounds.Dy() == h {
			b.surface.Backing.Clear()
			b.surface.Density = 1
			return true
		}
		b.surface.Backing.Deallocate()
	}
	b.surface.Backing = ebiten.NewImage(w, h)
	b.surface.Density = 1
	return true
}

func (b *ebitenBackend) SetScale(density float64) {
	b.surface.Density = density
}

func (b *ebitenBackend) Clear() {
	if b.surface.Backing != nil {
		b.surface.Backing.Clear()
	}
}

func (b *ebitenBackend) DrawFrame(index int, dst motion.Rect) {
	if b.surface.Backing == nil || index < 0 || index >= len(b.frames.Textures) {
		return
	}
	tex := b.frames.Textures[index]
	if tex == nil {
		return
	}
	bounds := tex.Bounds()
	sx, sy := dst.Scale(float64(bounds.Dx()), float64(bounds.Dy()))

	b.op.GeoM.Reset()
	b.op.GeoM.Scale(sx, sy)
	b.op.GeoM.Translate(dst.X, dst.Y)
	b.op.GeoM.Scale(b.surface.Density, b.surface.Density)
	b.op.Filter = ebiten.FilterLinear
	b.surface.Backing.DrawImage(tex, &b.op)
}

// NewSurfaceRenderer wires a surface.Renderer to the ebiten backend of the
// entity's frames and measures from its Viewport component.
func NewSurfaceRenderer(sd *components.SurfaceData, fr *components.FramesData, vp *components.ViewportData) *surface.Renderer {
	backend := &ebitenBackend{surface: sd, frames: fr}
	return surface.NewRenderer(backend, fr.Sequence, func() surface.Viewport {
		return vp.Viewport
	}, surface.Options{SettleDelay: cfg.Surface.SettleDelay})
}

// UpdateSurface keeps the backing store in step with the viewport and
// selects the frame for the smoothed progress.
// Must run AFTER UpdateSmoothing.
func UpdateSurface(ecs *ecs.ECS) {
	entry, ok := components.Surface.First(ecs.World)
	if !ok {
		return
	}
	sd := components.Surface.Get(entry)
	vp := components.Viewport.Get(entry)
	sm := components.Smoothing.Get(entry)
	if sd.Renderer == nil {
		return
	}

	switch {
	case vp.OrientationFlipped:
		sd.Renderer.OrientationChanged()
	case vp.Resized:
		sd.Renderer.Resize()
	}
	sd.Renderer.Tick()
	sd.Renderer.Select(sm.FrameIndex)
}

var surfaceDrawOp = &ebiten.DrawImageOptions{}

// DrawSurface blits the frame surface, then the film scrim and the edge
// vignette. The whole stack scrolls away once the viewport leaves the
// sticky region.
func DrawSurface(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Surface.First(ecs.World)
	if !ok {
		return
	}
	sd := components.Surface.Get(entry)
	vp := components.Viewport.Get(entry)
	scroll := components.Scroll.Get(entry)

	d := vp.Density
	shift := scroll.StickyShift() * d
	w, h := vp.Width*d, vp.Height*d
	if shift >= h {
		return
	}

	if sd.Backing != nil && sd.Renderer != nil && sd.Renderer.Allocated() {
		surfaceDrawOp.GeoM.Reset()
		surfaceDrawOp.GeoM.Translate(0, -shift)
		screen.DrawImage(sd.Backing, surfaceDrawOp)
	}

	vector.FillRect(screen, 0, float32(-shift), float32(w), float32(h),
		cfg.WithAlpha(cfg.Black, cfg.Surface.ScrimAlpha), false)

	drawVignette(screen, -shift, w, h, d)
}

var vignetteFailed bool

func drawVignette(screen *ebiten.Image, top, w, h, density float64) {
	if vignetteFailed {
		return
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: vignette disabled: %v", err)
		vignetteFailed = true
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(0, top)
	op.Uniforms = map[string]any{
		"Origin":   []float32{0, float32(top)},
		"Size":     []float32{float32(w), float32(h)},
		"Band":     float32(cfg.Surface.VignetteSize * density),
		"Strength": float32(cfg.Surface.VignetteAlpha),
	}
	screen.DrawRectShader(int(math.Ceil(w)), int(math.Ceil(h)), assets.VignetteShader, op)
}
