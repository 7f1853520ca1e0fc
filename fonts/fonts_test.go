package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFaceCache(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	a := Display.Get(48, 2)
	b := Display.Get(96.1, 1)
	if a != b {
		t.Error("equal physical sizes produced different faces")
	}
	if Display.Get(48, 1) == a {
		t.Error("density ignored")
	}

	small := font.MeasureString(Body.Get(12, 1), "RONIN")
	big := font.MeasureString(Body.Get(12, 2), "RONIN")
	if big <= small {
		t.Errorf("2x face measures %v, 1x %v", big, small)
	}

	if Label.GoText(12, 1) == nil {
		t.Error("no text/v2 face")
	}
}

func TestUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("missing font did not panic")
		}
	}()
	FontName("nope").Get(10, 1)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("garbage font accepted")
	}
}
