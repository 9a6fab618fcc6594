package systems

import (
	"math"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// ApplyInput turns the held controls into player velocity. Each held direction adds a fixed
// acceleration, then speed is clamped, so opposite inputs cancel rather than snap. A jump only
// starts from rest.
func ApplyInput(e *ecs.ECS, in components.InputData) {
	*GetInput(e) = in

	player := GetPlayer(e)
	if in.Left {
		player.VX -= cfg.Player.MoveAccel
		player.FacingRight = false
	}
	if in.Right {
		player.VX += cfg.Player.MoveAccel
		player.FacingRight = true
	}
	player.VX = math.Max(-cfg.Player.MaxSpeed, math.Min(cfg.Player.MaxSpeed, player.VX))

	if in.Jump && player.VY == 0 {
		player.VY = cfg.Player.JumpImpulse
		PlaySFX(e, cfg.SoundJump)
	}
}

// ActionState is the per-frame state of one host action
type ActionState struct {
	Pressed     bool // held down
	JustPressed bool // went down this frame
}

// PollActions reads keyboard and gamepad state for every bound action.
func PollActions() [cfg.ActionCount]ActionState {
	var out [cfg.ActionCount]ActionState
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		state := &out[actionID]
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state.Pressed = true
			}
			if inpututil.IsKeyJustPressed(key) {
				state.JustPressed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					state.Pressed = true
				}
				if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
					state.JustPressed = true
				}
			}
		}
	}
	return out
}

// PollVictoryKey returns the victory action whose number key went down this frame.
func PollVictoryKey() (cfg.VictoryAction, bool) {
	for i, keys := range cfg.Input.VictoryKeys {
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				return cfg.VictoryAction(i + 1), true
			}
		}
	}
	return 0, false
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ControlsFrom maps polled actions to the gameplay input contract.
func ControlsFrom(actions [cfg.ActionCount]ActionState) components.InputData {
	return components.InputData{
		Left:  actions[cfg.ActionMoveLeft].Pressed,
		Right: actions[cfg.ActionMoveRight].Pressed,
		Jump:  actions[cfg.ActionJump].Pressed,
		Down:  actions[cfg.ActionDown].Pressed,
	}
}
