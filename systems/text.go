package systems

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// measureFunc returns the advance width of s in logical pixels.
type measureFunc func(s string) float64

// faceMeasure measures with a face rendered at density.
func faceMeasure(face font.Face, density float64) measureFunc {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s).Ceil()) / density
	}
}

// ascent is the face's ascent in logical pixels.
func ascent(face font.Face, density float64) float64 {
	return float64(face.Metrics().Ascent.Ceil()) / density
}

// wrapWords breaks s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func wrapWords(s string, maxWidth float64, measure measureFunc) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

var textDrawOp = &ebiten.DrawImageOptions{}

// drawText draws s with its baseline at logical (x, y), faded to alpha.
func drawText(dst *ebiten.Image, s string, face font.Face, x, y, density, alpha float64, clr color.Color) {
	if alpha <= 0 || s == "" {
		return
	}
	textDrawOp.GeoM.Reset()
	textDrawOp.GeoM.Translate(x*density, y*density)
	textDrawOp.ColorScale.Reset()
	textDrawOp.ColorScale.ScaleWithColor(clr)
	textDrawOp.ColorScale.ScaleAlpha(float32(alpha))
	text.DrawWithOptions(dst, s, face, textDrawOp)
}

// drawShadowedText draws a soft dark copy below s before s itself.
func drawShadowedText(dst *ebiten.Image, s string, face font.Face, x, y, density, alpha float64, clr color.Color) {
	drawText(dst, s, face, x, y+3, density, alpha*0.6, color.Black)
	drawText(dst, s, face, x, y, density, alpha, clr)
}
