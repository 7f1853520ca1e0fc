package systems

import (
	"github.com/automoto/cinescroll/components"
	cfg "github.com/automoto/cinescroll/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the toggle actions: fullscreen, debug overlay and
// quit. Must run AFTER UpdateInput.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the command line defaults.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: cfg.Debug.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the user asked to close the window.
func QuitRequested(ecs *ecs.ECS) bool {
	entry, ok := components.Settings.First(ecs.World)
	return ok && components.Settings.Get(entry).Quit
}
