package factory

import (
	"math/rand"

	"github.com/automoto/retrofolio/archetypes"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the session singleton in the intro phase.
func CreateGame(ecs *ecs.ECS, seed int64, totalAchievements, totalFlags int) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		Phase:             cfg.PhaseIntro,
		TotalAchievements: totalAchievements,
		TotalFlags:        totalFlags,
		Rand:              rand.New(rand.NewSource(seed)),
	})
	components.Audio.SetValue(game, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return game
}
