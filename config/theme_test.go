package config

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#D60000")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0xd6, A: 255}) {
		t.Errorf("ParseHex = %v", c)
	}
	if _, err := ParseHex("red"); err == nil {
		t.Error("named colour accepted")
	}
}

func TestThemePalette(t *testing.T) {
	if Colors.Background != (color.RGBA{5, 5, 5, 255}) {
		t.Errorf("background = %v", Colors.Background)
	}
	bad := Theme
	bad.Accent = "#zzzzzz"
	if _, err := bad.Palette(); err == nil {
		t.Error("invalid palette accepted")
	}
}

func TestBlend(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{255, 255, 255, 255}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend(0) = %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend(1) = %v", got)
	}
	if got := Blend(a, b, 7); got != b {
		t.Errorf("Blend clamps: %v", got)
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{200, 100, 0, 255}, 0.5)
	want := color.RGBA{100, 50, 0, 128}
	if got != want {
		t.Errorf("WithAlpha = %v, want %v", got, want)
	}
	if got := WithAlpha(White, -1); got.A != 0 {
		t.Errorf("negative alpha = %v", got)
	}
}
