package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LoadingData drives the loading bar. Percent is what the loader reported;
// Shown eases toward it.
type LoadingData struct {
	Percent int
	Shown   float32
	Tween   *gween.Tween
	Ready   bool
}

var Loading = donburi.NewComponentType[LoadingData]()
