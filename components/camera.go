package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2

	// Viewport size in pixels, updated by resize
	Width  float64
	Height float64
}

var Camera = donburi.NewComponentType[CameraData]()
