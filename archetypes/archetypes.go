package archetypes

import (
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
	)
	Block = newArchetype(
		tags.Block,
		components.Body,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Body,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Body,
	)
	Hostile = newArchetype(
		tags.Hostile,
		components.Body,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.Body,
	)
	Flag = newArchetype(
		tags.Flag,
		components.Body,
	)
	Billboard = newArchetype(
		tags.Billboard,
		components.Body,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Body,
	)

	// Singletons
	Space = newArchetype(
		components.Space,
		components.Object, // reusable query probe
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Game,
		components.Input,
		components.Audio,
		components.MessageState,
		components.Particles,
		components.Victory,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.LayerWorld, all...))
}
