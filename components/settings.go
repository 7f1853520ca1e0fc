package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles changed at runtime
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Quit       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
