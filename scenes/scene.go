package scenes

import "github.com/automoto/cinescroll/surface"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Host is the game loop a scene runs in. Viewport reports the window's
// logical size and density as of the last Layout call.
type Host interface {
	SceneChanger
	Viewport() surface.Viewport
}
