package factory

import (
	"fmt"

	"github.com/automoto/retrofolio/archetypes"
	"github.com/automoto/retrofolio/components"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEntity places one generated entity in the world. Solid bodies also get a broadphase
// object; the castle is tagged as the goal.
func CreateEntity(ecs *ecs.ECS, e level.Entity) *donburi.Entry {
	var entry *donburi.Entry
	switch e.Kind {
	case level.KindPlayer:
		return CreatePlayer(ecs, e.X, e.Y)
	case level.KindGround, level.KindBrick, level.KindQuestion, level.KindUsed, level.KindPipe:
		entry = archetypes.Block.Spawn(ecs)
	case level.KindCastle:
		entry = archetypes.Goal.Spawn(ecs)
	case level.KindCoin:
		entry = archetypes.Coin.Spawn(ecs)
	case level.KindGoomba:
		entry = archetypes.Hostile.Spawn(ecs)
	case level.KindMushroom:
		entry = archetypes.PowerUp.Spawn(ecs)
	case level.KindFlag:
		entry = archetypes.Flag.Spawn(ecs)
	case level.KindBillboard:
		entry = archetypes.Billboard.Spawn(ecs)
	case level.KindCloud, level.KindBush, level.KindScenery, level.KindParticle, level.KindText:
		entry = archetypes.Scenery.Spawn(ecs)
	default:
		panic(fmt.Sprintf("factory: no archetype for kind %s", e.Kind))
	}

	components.Body.SetValue(entry, e)
	body := components.Body.Get(entry)

	if body.Solid {
		if body.Kind == level.KindCastle {
			attachCollider(ecs, entry, body, tags.ResolvGoal)
		} else {
			attachCollider(ecs, entry, body)
		}
	}
	return entry
}
