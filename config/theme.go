package config

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeConfig holds the palette as hex strings
type ThemeConfig struct {
	Background string
	Accent     string // Brand red
	Divider    string
	Icon       string
	IconRing   string
	Text       string
	Subtitle   string
	Muted      string
	Track      string // Loading bar track
	Card       string
	Border     string
}

// Palette is ThemeConfig resolved to colours
type Palette struct {
	Background color.RGBA
	Accent     color.RGBA
	Divider    color.RGBA
	Icon       color.RGBA
	IconRing   color.RGBA
	Text       color.RGBA
	Subtitle   color.RGBA
	Muted      color.RGBA
	Track      color.RGBA
	Card       color.RGBA
	Border     color.RGBA
}

var Theme ThemeConfig
var Colors Palette

func init() {
	Theme = ThemeConfig{
		Background: "#050505",
		Accent:     "#D60000",
		Divider:    "#dc2626",
		Icon:       "#ef4444",
		IconRing:   "#7f1d1d",
		Text:       "#ffffff",
		Subtitle:   "#d1d5db",
		Muted:      "#6b7280",
		Track:      "#1f2937",
		Card:       "#111111",
		Border:     "#1f2937",
	}

	p, err := Theme.Palette()
	if err != nil {
		panic(err)
	}
	Colors = p
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Palette resolves every entry of the theme.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{t.Background, &p.Background},
		{t.Accent, &p.Accent},
		{t.Divider, &p.Divider},
		{t.Icon, &p.Icon},
		{t.IconRing, &p.IconRing},
		{t.Text, &p.Text},
		{t.Subtitle, &p.Subtitle},
		{t.Muted, &p.Muted},
		{t.Track, &p.Track},
		{t.Card, &p.Card},
		{t.Border, &p.Border},
	}
	for _, f := range fields {
		c, err := ParseHex(f.hex)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = c
	}
	return p, nil
}

// Blend mixes a and b in Lab space; t is clamped to [0,1].
func Blend(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// WithAlpha returns c at opacity a, premultiplied as ebiten expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(255 * a)),
	}
}
