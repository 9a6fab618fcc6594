package components

import "github.com/yohamta/donburi"

// InputData is the held state of the four gameplay controls. It is level triggered: the host
// reports what is down this frame, not what changed.
type InputData struct {
	Left  bool
	Right bool
	Jump  bool
	Down  bool
}

var Input = donburi.NewComponentType[InputData]()
