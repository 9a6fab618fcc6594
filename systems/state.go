package systems

import (
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// phaseTransitions is the complete phase graph. Anything not listed is rejected.
var phaseTransitions = map[cfg.PhaseID][]cfg.PhaseID{
	cfg.PhaseIntro:    {cfg.PhasePlaying},
	cfg.PhasePlaying:  {cfg.PhaseVictory, cfg.PhaseGameOver},
	cfg.PhaseVictory:  {cfg.PhaseIntro},
	cfg.PhaseGameOver: {cfg.PhaseIntro},
}

// CanTransition reports whether the phase graph has an edge from -> to.
func CanTransition(from, to cfg.PhaseID) bool {
	for _, next := range phaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SetPhase moves the game to a new phase if the graph allows it and runs the entry actions.
// Invalid transitions are ignored and reported as false.
func SetPhase(e *ecs.ECS, to cfg.PhaseID) bool {
	game := GetGame(e)
	if !CanTransition(game.Phase, to) {
		return false
	}
	log.Debug("phase change", "from", game.Phase, "to", to)
	game.Phase = to

	switch to {
	case cfg.PhasePlaying:
		game.IntroTimer = 0
		PlaySFX(e, cfg.SoundCoin)
	case cfg.PhaseVictory:
		victory := GetVictory(e)
		victory.Fade = gween.New(0, 1, cfg.Overlay.VictoryFadeIn, ease.OutQuad)
		victory.Alpha = 0
	case cfg.PhaseGameOver:
		PlaySFX(e, cfg.SoundDie)
	case cfg.PhaseIntro:
		game.IntroTimer = 0
	}
	return true
}

// WithPhase wraps a system so it only runs in the given phases. The phase is read when the
// system is called, so a transition earlier in the same tick stops later systems.
func WithPhase(system ecs.System, phases ...cfg.PhaseID) ecs.System {
	return func(e *ecs.ECS) {
		current := GetGame(e).Phase
		for _, p := range phases {
			if p == current {
				system(e)
				return
			}
		}
	}
}

// WithGameplayChecks runs a system only while playing.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPhase(system, cfg.PhasePlaying)
}

// UpdateIntro counts up to the auto start.
func UpdateIntro(e *ecs.ECS) {
	game := GetGame(e)
	game.IntroTimer += game.DT
	if game.IntroTimer >= cfg.Phase.IntroAutoStart {
		SetPhase(e, cfg.PhasePlaying)
	}
}

// GetGame returns the session singleton.
func GetGame(e *ecs.ECS) *components.GameData {
	return components.Game.Get(components.Game.MustFirst(e.World))
}

// GetLevel returns the arena singleton.
func GetLevel(e *ecs.ECS) *components.LevelData {
	return components.Level.Get(components.Level.MustFirst(e.World))
}

// GetInput returns the held control state.
func GetInput(e *ecs.ECS) *components.InputData {
	return components.Input.Get(components.Input.MustFirst(e.World))
}

// GetVictory returns the victory overlay state.
func GetVictory(e *ecs.ECS) *components.VictoryData {
	return components.Victory.Get(components.Victory.MustFirst(e.World))
}

// GetPlayer returns the player body.
func GetPlayer(e *ecs.ECS) *level.Entity {
	return components.Body.Get(GetLevel(e).Player)
}
