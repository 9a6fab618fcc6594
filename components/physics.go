package components

import (
	"github.com/automoto/retrofolio/level"
	"github.com/yohamta/donburi"
)

// Body is the simulation entity itself: kind, box, velocity and content. Every arena entry
// carries one.
var Body = donburi.NewComponentType[level.Entity]()
