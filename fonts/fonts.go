package fonts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Display FontName = "display" // Scene titles and brand
	Body    FontName = "body"    // Subtitles and copy
	Label   FontName = "label"   // Small tracked captions
)

// Get returns the face of name at a logical size, rendered for the given
// density so glyphs stay crisp on high-DPI screens.
func (f FontName) Get(size, density float64) font.Face {
	return getFont(f, size*density)
}

// GoText returns a text/v2 face for ebitenui widgets.
func (f FontName) GoText(size, density float64) text.Face {
	return getGoTextFace(f, size*density)
}

type faceKey struct {
	name FontName
	size float64
}

var (
	parsed  = map[FontName]*truetype.Font{}
	sources = map[FontName]*text.GoTextFaceSource{}
	fonts   = map[faceKey]font.Face{}
	goFaces = map[faceKey]text.Face{}
)

// LoadDefaults registers the Go font family under the built-in names.
func LoadDefaults() error {
	for name, ttf := range map[FontName][]byte{
		Display: gobold.TTF,
		Body:    gomedium.TTF,
		Label:   goregular.TTF,
	} {
		if err := LoadFont(name, ttf); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("load font %s: %w", name, err)
	}
	parsed[name] = fontData
	sources[name] = src
	return nil
}

// quantize keeps the face cache small while the window is being resized.
func quantize(size float64) float64 {
	return math.Max(1, math.Round(size*2)/2)
}

func getFont(name FontName, size float64) font.Face {
	key := faceKey{name, quantize(size)}
	if f, ok := fonts[key]; ok {
		return f
	}
	fontData, ok := parsed[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	f := truetype.NewFace(fontData, &truetype.Options{Size: key.size, Hinting: font.HintingFull})
	fonts[key] = f
	return f
}

func getGoTextFace(name FontName, size float64) text.Face {
	key := faceKey{name, quantize(size)}
	if f, ok := goFaces[key]; ok {
		return f
	}
	src, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	f := &text.GoTextFace{Source: src, Size: key.size}
	goFaces[key] = f
	return f
}
