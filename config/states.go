package config

import "github.com/yohamta/donburi/ecs"

// PhaseID is the coarse game state machine value
type PhaseID int

const (
	PhaseIntro PhaseID = iota
	PhasePlaying
	PhaseVictory
	PhaseGameOver
)

func (p PhaseID) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Render layers, drawn in order
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)

// VictoryAction is one of the call-to-action targets offered on the victory screen
type VictoryAction int

const (
	ActionContact VictoryAction = iota + 1
	ActionResume
	ActionProfile
	ActionRestart
)

func (a VictoryAction) String() string {
	switch a {
	case ActionContact:
		return "contact"
	case ActionResume:
		return "resume"
	case ActionProfile:
		return "linkedin"
	case ActionRestart:
		return "restart"
	}
	return "unknown"
}

// ParseVictoryAction accepts either the numeric key ("1".."4") or the action name.
func ParseVictoryAction(s string) (VictoryAction, bool) {
	switch s {
	case "1", "contact":
		return ActionContact, true
	case "2", "resume":
		return ActionResume, true
	case "3", "linkedin":
		return ActionProfile, true
	case "4", "restart":
		return ActionRestart, true
	}
	return 0, false
}
