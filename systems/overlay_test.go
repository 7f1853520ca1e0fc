package systems

import (
	"reflect"
	"testing"
	"unicode/utf8"

	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/motion"
	"github.com/automoto/cinescroll/timeline"
)

// monoMeasure is a fixed pitch face: every rune is 10 logical pixels.
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

func testMetrics(padding float64) overlayMetrics {
	return overlayMetrics{
		padding:         padding,
		titleLineHeight: 80,
		titleAscent:     60,
		subLineHeight:   30,
		subAscent:       20,
		subMaxWidth:     cfg.Overlay.SubtitleMaxWidth,
		dividerWidth:    cfg.Overlay.DividerWidth,
		titleMeasure:    monoMeasure,
		subMeasure:      monoMeasure,
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width float64
		want  []string
	}{
		{"empty", "   ", 100, nil},
		{"fits", "URBAN SAMURAI", 200, []string{"URBAN SAMURAI"}},
		{"breaks", "AWAKEN THE MACHINE", 136, []string{"AWAKEN THE", "MACHINE"}},
		{"long word alone", "CONTROL IN MOTION", 30, []string{"CONTROL", "IN", "MOTION"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.in, tt.width, monoMeasure)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapWords = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutSceneAlignment(t *testing.T) {
	def := cfg.SceneDef{Title: "Urban Samurai", Subtitle: "The city is yours", Icon: "crosshair"}
	m := testMetrics(80)

	tests := []struct {
		align  timeline.Align
		vw     float64
		titleX float64
		badgeX float64
	}{
		{timeline.AlignCenter, 1280, 575, 612},
		{timeline.AlignLeft, 1280, 80, 80},
		{timeline.AlignRight, 1280, 1070, 1144},
		// narrow viewports collapse to center
		{timeline.AlignRight, 600, 235, 272},
	}
	for _, tt := range tests {
		def.Align = tt.align
		l := layoutScene(def, tt.vw, 720, m)
		if len(l.Title) != 1 {
			t.Fatalf("%v@%v: title lines %+v", tt.align, tt.vw, l.Title)
		}
		if l.Title[0].X != tt.titleX {
			t.Errorf("%v@%v: title x = %v, want %v", tt.align, tt.vw, l.Title[0].X, tt.titleX)
		}
		if l.Badge.X != tt.badgeX {
			t.Errorf("%v@%v: badge x = %v, want %v", tt.align, tt.vw, l.Badge.X, tt.badgeX)
		}
	}
}

func TestLayoutSceneCentersVertically(t *testing.T) {
	def := cfg.SceneDef{Title: "Urban Samurai", Subtitle: "The city is yours", Icon: "crosshair"}
	l := layoutScene(def, 1280, 720, testMetrics(80))

	badge := cfg.Overlay.IconSize + 2*cfg.Overlay.IconPadding
	want := badge + cfg.Overlay.IconGap + 80 + cfg.Overlay.TitleGap +
		cfg.Overlay.DividerHeight + cfg.Overlay.DividerGap + 30
	if l.Height != want {
		t.Fatalf("height = %v, want %v", l.Height, want)
	}
	top := (720 - want) / 2
	if l.Badge.Y != top {
		t.Errorf("badge y = %v, want %v", l.Badge.Y, top)
	}
	if got := l.Title[0].Baseline; got != top+badge+cfg.Overlay.IconGap+60 {
		t.Errorf("title baseline = %v", got)
	}
	if l.Divider.Y <= l.Title[0].Baseline || l.Subtitle[0].Baseline <= l.Divider.Y {
		t.Errorf("elements out of order: %+v", l)
	}
}

func TestLayoutSceneWithoutIcon(t *testing.T) {
	def := cfg.SceneDef{Title: "Ride The Edge", Subtitle: "Go"}
	l := layoutScene(def, 1280, 720, testMetrics(80))
	if !l.Badge.Empty() {
		t.Errorf("badge = %+v, want empty", l.Badge)
	}
	if got := (720 - l.Height) / 2; l.Title[0].Baseline != got+60 {
		t.Errorf("title baseline = %v, want %v", l.Title[0].Baseline, got+60)
	}
}

func TestLayoutSceneWrapsNarrowTitles(t *testing.T) {
	def := cfg.SceneDef{Title: "Awaken The Machine", Subtitle: "x"}
	l := layoutScene(def, 200, 720, testMetrics(32))
	if len(l.Title) != 2 {
		t.Fatalf("title lines = %+v", l.Title)
	}
	if l.Title[1].Baseline-l.Title[0].Baseline != 80 {
		t.Errorf("line step = %v, want 80", l.Title[1].Baseline-l.Title[0].Baseline)
	}
}

func TestWipe(t *testing.T) {
	r := motion.Rect{X: 100, Y: 10, W: 100, H: 4}
	tests := []struct {
		origin float64
		wantX  float64
	}{
		{0, 100},
		{0.5, 125},
		{1, 150},
	}
	for _, tt := range tests {
		got := wipe(r, 0.5, tt.origin)
		if got.X != tt.wantX || got.W != 50 || got.Y != 10 || got.H != 4 {
			t.Errorf("wipe origin %v = %+v", tt.origin, got)
		}
	}
	if !wipe(r, 0, 0.5).Empty() {
		t.Error("zero scale should be empty")
	}
}
