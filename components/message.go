package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton holding the one long-form banner
type MessageStateData struct {
	Text  string
	Timer float64 // seconds remaining
}

var MessageState = donburi.NewComponentType[MessageStateData]()
