package systems

import (
	"fmt"

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

// UpdateLoading follows the loader's percentage and eases the bar toward
// it. Must run AFTER UpdateFrames.
func UpdateLoading(ecs *ecs.ECS) {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	ld := components.Loading.Get(entry)
	fr := components.Frames.Get(entry)
	if fr.Loader == nil {
		return
	}
	stepLoading(ld, fr.Loader.Percent(), fr.Loader.Ready())
}

func stepLoading(ld *components.LoadingData, percent int, ready bool) {
	if percent != ld.Percent {
		ld.Percent = percent
		ld.Tween = gween.New(ld.Shown, float32(percent), cfg.Loading.TweenTicks, ease.OutCubic)
	}
	if ld.Tween != nil {
		value, done := ld.Tween.Update(1)
		ld.Shown = value
		if done {
			ld.Tween = nil
		}
	}
	ld.Ready = ready
}

// LoadingLabel is the caption under the bar.
func LoadingLabel(percent int) string {
	return fmt.Sprintf("%s — %d%%", cfg.Loading.Label, percent)
}

// DrawLoading draws the brand, the progress bar and the percentage.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	ld := components.Loading.Get(entry)
	vp := components.Viewport.Get(entry)
	if vp.Empty() {
		return
	}
	screen.Fill(cfg.Colors.Background)

	d := vp.Density
	brandFace := fonts.Display.Get(cfg.Loading.BrandSize, d)
	labelFace := fonts.Label.Get(cfg.Loading.LabelSize, d)

	brandW := float64(font.MeasureString(brandFace, cfg.Loading.Brand).Ceil()) / d
	label := LoadingLabel(ld.Percent)
	labelW := float64(font.MeasureString(labelFace, label).Ceil()) / d

	barW, barH := cfg.Loading.BarWidth, cfg.Loading.BarHeight
	if limit := vp.Width - 32; barW > limit && limit > 0 {
		barW = limit
	}
	cy := vp.Height / 2
	barX := (vp.Width - barW) / 2
	barY := cy

	drawText(screen, cfg.Loading.Brand, brandFace, (vp.Width-brandW)/2, barY-cfg.Loading.BarGap, d, 1, cfg.Colors.Accent)

	vector.FillRect(screen, float32(barX*d), float32(barY*d), float32(barW*d), float32(barH*d), cfg.Colors.Track, false)
	frac := float64(ld.Shown) / 100
	if frac > 0 {
		fill := cfg.Blend(cfg.Colors.IconRing, cfg.Colors.Accent, frac)
		vector.FillRect(screen, float32(barX*d), float32(barY*d), float32(barW*frac*d), float32(barH*d), fill, false)
	}

	drawText(screen, label, labelFace, (vp.Width-labelW)/2, barY+barH+16+cfg.Loading.LabelSize, d, 1, cfg.Colors.Muted)
}
