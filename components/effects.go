package components

import (
	"github.com/automoto/retrofolio/level"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticlesData holds short-lived particles and floating text. Unlike arena entities they are
// removed from the slice when their life runs out.
type ParticlesData struct {
	Items []level.Entity
}

var Particles = donburi.NewComponentType[ParticlesData]()

// ShakeData marks a boss that has been hit with the hammer and is about to go down
type ShakeData struct {
	Remaining float64
}

var Shake = donburi.NewComponentType[ShakeData]()

// BumpData is the cosmetic hop of a block that was hit from below
type BumpData struct {
	Tween  *gween.Sequence
	Offset float64
}

var Bump = donburi.NewComponentType[BumpData]()
