package engine

import (
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/systems"
)

// State is a read-only copy of the session counters for hosts and tests.
type State struct {
	Phase             cfg.PhaseID
	Score             int
	Coins             int
	Achievements      int
	TotalAchievements int
	Flags             int
	TotalFlags        int
	HasHammer         bool
	Visited           []string
	Unlocked          []string
	Defeated          []string
	CameraX           float64
	Message           string
	Particles         int
	Player            level.Entity
}

// State snapshots the session. The zero State is returned when no level is loaded.
func (e *Engine) State() State {
	if e.ecs == nil {
		return State{}
	}
	game := systems.GetGame(e.ecs)
	msg, _ := components.MessageState.First(e.ecs.World)
	particles, _ := components.Particles.First(e.ecs.World)

	return State{
		Phase:             game.Phase,
		Score:             game.Score,
		Coins:             game.Coins,
		Achievements:      game.Achievements,
		TotalAchievements: game.TotalAchievements,
		Flags:             game.Flags,
		TotalFlags:        game.TotalFlags,
		HasHammer:         game.HasHammer,
		Visited:           append([]string(nil), game.Visited...),
		Unlocked:          append([]string(nil), game.Unlocked...),
		Defeated:          append([]string(nil), game.Defeated...),
		CameraX:           systems.GetCamera(e.ecs).Position.X,
		Message:           components.MessageState.Get(msg).Text,
		Particles:         len(components.Particles.Get(particles).Items),
		Player:            *systems.GetPlayer(e.ecs),
	}
}

// Entity returns a copy of the arena entity with the given id.
func (e *Engine) Entity(id string) (level.Entity, bool) {
	if e.ecs == nil {
		return level.Entity{}, false
	}
	for _, entry := range systems.GetLevel(e.ecs).Entities {
		if body := components.Body.Get(entry); body.ID == id {
			return *body, true
		}
	}
	return level.Entity{}, false
}

// Bookmarks lists the warp targets in level order.
func (e *Engine) Bookmarks() []string {
	if e.ecs == nil {
		return nil
	}
	return append([]string(nil), systems.GetLevel(e.ecs).BookmarkOrder...)
}
