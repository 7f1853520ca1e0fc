package systems

import (
	"log"
	"strings"

	"github.com/automoto/cinescroll/assets"
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/fonts"
	"github.com/automoto/cinescroll/motion"
	"github.com/automoto/cinescroll/timeline"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateOverlay samples every scene active at the raw progress.
// Must run AFTER UpdateScroll.
func UpdateOverlay(ecs *ecs.ECS) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	ov := components.Overlay.Get(entry)
	scroll := components.Scroll.Get(entry)
	if ov.Scheduler == nil {
		ov.Samples = ov.Samples[:0]
		return
	}
	ov.Samples = ov.Scheduler.AppendSamples(ov.Samples[:0], scroll.Progress)
}

// overlayMetrics are the viewport-dependent sizes of a scene layout.
type overlayMetrics struct {
	padding         float64
	titleLineHeight float64
	titleAscent     float64
	subLineHeight   float64
	subAscent       float64
	subMaxWidth     float64
	dividerWidth    float64
	titleMeasure    measureFunc
	subMeasure      measureFunc
}

// sceneLayout is where each element of a scene rests, in logical pixels,
// before its animated offset and scale are applied.
type sceneLayout struct {
	Align     timeline.Align
	Badge     motion.Rect
	Title     []textLine
	Divider   motion.Rect
	Subtitle  []textLine
	Height    float64
	TitleLine float64
	SubLine   float64
}

type textLine struct {
	Text     string
	X        float64
	Baseline float64
}

func newOverlayMetrics(vw, density float64, titleFace, subFace font.Face, titleSize, subSize float64) overlayMetrics {
	compact := vw < cfg.Overlay.CompactWidth
	m := overlayMetrics{
		padding:         cfg.Overlay.Padding,
		titleLineHeight: titleSize * cfg.Overlay.LineSpacing,
		titleAscent:     ascent(titleFace, density),
		subLineHeight:   subSize * 1.6,
		subAscent:       ascent(subFace, density),
		subMaxWidth:     cfg.Overlay.SubtitleMaxWidth,
		dividerWidth:    cfg.Overlay.DividerWidth,
		titleMeasure:    faceMeasure(titleFace, density),
		subMeasure:      faceMeasure(subFace, density),
	}
	if compact {
		m.padding = cfg.Overlay.CompactPadding
		m.dividerWidth = cfg.Overlay.DividerCompact
	}
	return m
}

// alignX places a span of width w inside the padded viewport.
func alignX(a timeline.Align, vw, padding, w float64) float64 {
	switch a {
	case timeline.AlignLeft:
		return padding
	case timeline.AlignRight:
		return vw - padding - w
	}
	return (vw - w) / 2
}

// layoutScene stacks badge, title, divider and subtitle and centers the
// stack vertically. Narrow viewports always center horizontally.
func layoutScene(def cfg.SceneDef, vw, vh float64, m overlayMetrics) sceneLayout {
	align := def.Align.Effective(vw, cfg.Overlay.CompactWidth)
	textWidth := vw - 2*m.padding
	if textWidth < 1 {
		textWidth = 1
	}
	subWidth := textWidth
	if m.subMaxWidth > 0 && m.subMaxWidth < subWidth {
		subWidth = m.subMaxWidth
	}

	titleLines := wrapWords(strings.ToUpper(def.Title), textWidth, m.titleMeasure)
	subLines := wrapWords(strings.ToUpper(def.Subtitle), subWidth, m.subMeasure)

	badge := cfg.Overlay.IconSize + 2*cfg.Overlay.IconPadding
	titleH := float64(len(titleLines)) * m.titleLineHeight
	subH := float64(len(subLines)) * m.subLineHeight

	l := sceneLayout{
		Align:     align,
		TitleLine: m.titleLineHeight,
		SubLine:   m.subLineHeight,
	}
	if def.Icon != "" {
		l.Height += badge + cfg.Overlay.IconGap
	}
	l.Height += titleH + cfg.Overlay.TitleGap + cfg.Overlay.DividerHeight + cfg.Overlay.DividerGap + subH

	y := (vh - l.Height) / 2
	if def.Icon != "" {
		l.Badge = motion.Rect{X: alignX(align, vw, m.padding, badge), Y: y, W: badge, H: badge}
		y += badge + cfg.Overlay.IconGap
	}

	for i, s := range titleLines {
		w := m.titleMeasure(s)
		l.Title = append(l.Title, textLine{
			Text:     s,
			X:        alignX(align, vw, m.padding, w),
			Baseline: y + float64(i)*m.titleLineHeight + m.titleAscent,
		})
	}
	y += titleH + cfg.Overlay.TitleGap

	l.Divider = motion.Rect{
		X: alignX(align, vw, m.padding, m.dividerWidth),
		Y: y,
		W: m.dividerWidth,
		H: cfg.Overlay.DividerHeight,
	}
	y += cfg.Overlay.DividerHeight + cfg.Overlay.DividerGap

	for i, s := range subLines {
		w := m.subMeasure(s)
		l.Subtitle = append(l.Subtitle, textLine{
			Text:     s,
			X:        alignX(align, vw, m.padding, w),
			Baseline: y + float64(i)*m.subLineHeight + m.subAscent,
		})
	}
	return l
}

// wipe scales a rect horizontally about an origin in [0,1] of its width.
func wipe(r motion.Rect, scaleX, origin float64) motion.Rect {
	w := r.W * scaleX
	return motion.Rect{X: r.X + (r.W-w)*origin, Y: r.Y, W: w, H: r.H}
}

var warnedIcons = map[string]bool{}

// DrawOverlays renders the active scenes over the frame surface.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	ov := components.Overlay.Get(entry)
	vp := components.Viewport.Get(entry)
	if len(ov.Samples) == 0 || vp.Empty() || ov.Scenes == nil {
		return
	}

	d := vp.Density
	compact := vp.Width < cfg.Overlay.CompactWidth
	titleSize, subSize := cfg.Overlay.TitleSize, cfg.Overlay.SubtitleSize
	if compact {
		titleSize, subSize = cfg.Overlay.CompactTitleSize, subSize*0.75
	}
	titleFace := fonts.Display.Get(titleSize, d)
	subFace := fonts.Body.Get(subSize, d)
	m := newOverlayMetrics(vp.Width, d, titleFace, subFace, titleSize, subSize)

	for _, sample := range ov.Samples {
		if sample.Scene < 0 || sample.Scene >= len(ov.Scenes.Scenes) {
			continue
		}
		def := ov.Scenes.Scenes[sample.Scene]
		l := layoutScene(def, vp.Width, vp.Height, m)
		drawScene(screen, def, l, sample.Elements, titleFace, subFace, d)
	}
}

func drawScene(screen *ebiten.Image, def cfg.SceneDef, l sceneLayout, st [timeline.ElementCount]timeline.ElementState, titleFace, subFace font.Face, d float64) {
	if icon := st[timeline.Icon]; icon.Visible() && def.Icon != "" {
		drawBadge(screen, def.Icon, l.Badge, icon, d)
	}

	if title := st[timeline.Title]; title.Visible() {
		for _, line := range l.Title {
			drawShadowedText(screen, line.Text, titleFace, line.X, line.Baseline+title.OffsetY, d, title.Opacity, cfg.Colors.Text)
		}
	}

	if div := st[timeline.Divider]; div.Visible() {
		r := wipe(l.Divider, div.ScaleX, l.Align.Origin())
		r.Y += div.OffsetY
		if !r.Empty() {
			vector.FillRect(screen, float32(r.X*d), float32(r.Y*d), float32(r.W*d), float32(r.H*d),
				cfg.WithAlpha(cfg.Colors.Divider, div.Opacity), false)
		}
	}

	if sub := st[timeline.Subtitle]; sub.Visible() {
		for _, line := range l.Subtitle {
			drawShadowedText(screen, line.Text, subFace, line.X, line.Baseline+sub.OffsetY, d, sub.Opacity, cfg.Colors.Subtitle)
		}
	}
}

// drawBadge draws the round icon badge scaled about its center.
func drawBadge(screen *ebiten.Image, name string, badge motion.Rect, st timeline.ElementState, d float64) {
	ic, ok := assets.IconByName(name)
	if !ok {
		if !warnedIcons[name] {
			log.Printf("Warning: unknown icon %q", name)
			warnedIcons[name] = true
		}
		return
	}
	cx := badge.X + badge.W/2
	cy := badge.Y + badge.H/2 + st.OffsetY
	r := badge.W / 2 * st.Scale
	if r <= 0 {
		return
	}

	vector.FillCircle(screen, float32(cx*d), float32(cy*d), float32(r*d),
		cfg.WithAlpha(cfg.Colors.IconRing, 0.2*st.Opacity), true)
	vector.StrokeCircle(screen, float32(cx*d), float32(cy*d), float32(r*d), float32(d),
		cfg.WithAlpha(cfg.Colors.Icon, 0.3*st.Opacity), true)

	size := cfg.Overlay.IconSize * st.Scale
	assets.DrawIcon(screen, ic, (cx-size/2)*d, (cy-size/2)*d, size*d, 1.5,
		cfg.WithAlpha(cfg.Colors.Icon, st.Opacity))
}
