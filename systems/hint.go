package systems

import (
	"github.com/automoto/cinescroll/assets"
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// newHintBob is one 0 -> 1 -> 0 swing of the hint, eased in and out.
func newHintBob() *gween.Sequence {
	half := cfg.Hint.PeriodTicks / 2
	return gween.NewSequence(
		gween.New(0, 1, half, ease.InOutSine),
		gween.New(1, 0, half, ease.InOutSine),
	)
}

// UpdateHint animates the scroll hint and hides it for good after the
// first scroll. Must run AFTER UpdateScroll.
func UpdateHint(ecs *ecs.ECS) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)
	scroll := components.Scroll.Get(entry)
	stepHint(hint, scroll.HasScrolled)
}

func stepHint(hint *components.HintData, hasScrolled bool) {
	if hint.Hidden {
		return
	}
	if hasScrolled {
		hint.Hidden = true
		hint.Bob = nil
		return
	}
	if hint.Bob == nil {
		hint.Bob = newHintBob()
	}
	value, _, done := hint.Bob.Update(1)
	hint.Phase = value
	if done {
		hint.Bob.Reset()
	}
}

// DrawHint draws the bobbing mouse, the caption and the pulsing line at the
// bottom center of the viewport.
func DrawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Hint.First(ecs.World)
	if !ok {
		return
	}
	hint := components.Hint.Get(entry)
	vp := components.Viewport.Get(entry)
	if hint.Hidden || vp.Empty() {
		return
	}

	d := vp.Density
	phase := float64(hint.Phase)
	face := fonts.Label.Get(cfg.Hint.TextSize, d)
	textW := float64(font.MeasureString(face, cfg.Hint.Text).Ceil()) / d
	lineMax := float64(cfg.Hint.LineMax)

	iconSize := cfg.Hint.IconSize
	bottom := vp.Height - cfg.Hint.BottomMargin
	lineTop := bottom - lineMax
	textBaseline := lineTop - 12
	iconTop := textBaseline - cfg.Hint.TextSize - 12 - iconSize

	bob := phase * float64(cfg.Hint.BobDistance)
	assets.DrawIcon(screen, assets.Mouse, (vp.Width-iconSize)/2*d, (iconTop+bob)*d, iconSize*d, 2,
		cfg.WithAlpha(cfg.Colors.Text, cfg.Hint.Alpha))

	drawText(screen, cfg.Hint.Text, face, (vp.Width-textW)/2, textBaseline, d, cfg.Hint.Alpha, cfg.Colors.Text)

	lineH := float64(cfg.Hint.LineMin) + (lineMax-float64(cfg.Hint.LineMin))*phase
	lineAlpha := 0.2 + 0.5*phase
	vector.FillRect(screen, float32(vp.Width/2*d), float32(lineTop*d), float32(d), float32(lineH*d),
		cfg.WithAlpha(cfg.Colors.Icon, lineAlpha), false)
}
