package components

import (
	cfg "github.com/automoto/retrofolio/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ButtonRect is a call-to-action hit area in screen space
type ButtonRect struct {
	Action     cfg.VictoryAction
	X, Y, W, H float64
}

func (b ButtonRect) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// VictoryData stores the victory overlay state. Buttons are rewritten by the renderer every
// frame and read back for click hit testing.
type VictoryData struct {
	Buttons []ButtonRect
	Fade    *gween.Tween
	Alpha   float32
}

var Victory = donburi.NewComponentType[VictoryData]()
