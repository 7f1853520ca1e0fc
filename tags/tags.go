package tags

import "github.com/yohamta/donburi"

var (
	Experience = donburi.NewTag().SetName("Experience")
	Loading    = donburi.NewTag().SetName("Loading")
)
