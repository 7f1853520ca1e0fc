package systems

import (
	"errors"
	"image"
	"testing"

	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/frames"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestStepLoadingEasesTowardPercent(t *testing.T) {
	ld := &components.LoadingData{}

	stepLoading(ld, 50, false)
	if ld.Shown <= 0 || ld.Shown >= 50 {
		t.Fatalf("shown after one tick = %v", ld.Shown)
	}
	for i := 0; i < int(cfg.Loading.TweenTicks)+1; i++ {
		stepLoading(ld, 50, false)
	}
	if ld.Shown != 50 || ld.Tween != nil {
		t.Errorf("shown %v tween %v, want 50 and done", ld.Shown, ld.Tween)
	}

	stepLoading(ld, 100, true)
	if !ld.Ready || ld.Percent != 100 {
		t.Errorf("ready %v percent %d", ld.Ready, ld.Percent)
	}
}

func TestLoadingLabel(t *testing.T) {
	if got, want := LoadingLabel(42), "LOADING EXPERIENCE — 42%"; got != want {
		t.Errorf("LoadingLabel = %q, want %q", got, want)
	}
}

func TestUploadFrameSkipsFailures(t *testing.T) {
	seq := frames.NewSequence(2)
	fr := &components.FramesData{Sequence: seq, Textures: make([]*ebiten.Image, 2)}
	upload := UploadFrame(fr)

	upload(frames.Settlement{Index: 0, Err: errors.New("404")})
	upload(frames.Settlement{Index: 5, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))})
	for i, tex := range fr.Textures {
		if tex != nil {
			t.Errorf("texture %d uploaded", i)
		}
	}
}
