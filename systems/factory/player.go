package factory

import (
	"github.com/automoto/retrofolio/archetypes"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the hero. The player is never registered with the broadphase: it is the
// one body that moves through it.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Body.SetValue(player, level.Entity{
		ID:          "player",
		Kind:        level.KindPlayer,
		X:           x,
		Y:           y,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Active:      true,
		Solid:       true,
		Gravity:     true,
		Color:       cfg.Player.Color,
		TextureID:   cfg.Player.TextureID,
		FacingRight: true,
	})
	return player
}
