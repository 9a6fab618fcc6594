package factory

import (
	"github.com/automoto/retrofolio/archetypes"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase for a world of the given extent. The space is grown by
// config.Physics.SpaceMargin on every side.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	margin := cfg.Physics.SpaceMargin
	cell := cfg.Physics.SpaceCellSize
	spaceData := resolv.NewSpace(int(width+2*margin), int(height+2*margin), cell, cell)
	components.Space.Set(space, spaceData)

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	spaceData.Add(probe)
	components.Object.SetValue(space, components.ObjectData{Object: probe})
	return space
}

// attachCollider registers a solid body with the broadphase
func attachCollider(ecs *ecs.ECS, entry *donburi.Entry, body *level.Entity, extra ...string) {
	margin := cfg.Physics.SpaceMargin
	obj := resolv.NewObject(body.X+margin, body.Y+margin, body.W, body.H, append([]string{tags.ResolvSolid}, extra...)...)
	obj.Data = entry // Link for O(1) lookup

	entry.AddComponent(components.Object)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
