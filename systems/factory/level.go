package factory

import (
	"math"

	"github.com/automoto/retrofolio/archetypes"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel fills a fresh world from generator output. Entities keep generator order and the
// player is appended last at the configured spawn point.
func CreateLevel(ecs *ecs.ECS, data *level.Data) *donburi.Entry {
	width, height := extent(data.Entities)
	width = math.Max(width, data.Width)
	height = math.Max(height, float64(cfg.C.Height)+cfg.Physics.DeathMargin)
	CreateSpace(ecs, width, height)

	entry := archetypes.Level.Spawn(ecs)
	ld := &components.LevelData{
		Entities:          make([]*donburi.Entry, 0, len(data.Entities)+1),
		Index:             make(map[donburi.Entity]int, len(data.Entities)+1),
		Bookmarks:         make(map[string]float64, len(data.Bookmarks)),
		BookmarkOrder:     append([]string(nil), data.BookmarkOrder...),
		Width:             width,
		TotalAchievements: data.TotalAchievements,
		TotalFlags:        data.TotalFlags,
	}
	for k, v := range data.Bookmarks {
		ld.Bookmarks[k] = v
	}

	add := func(e *donburi.Entry) {
		ld.Index[e.Entity()] = len(ld.Entities)
		ld.Entities = append(ld.Entities, e)
	}
	for _, e := range data.Entities {
		add(CreateEntity(ecs, e))
	}
	ld.Player = CreatePlayer(ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)
	add(ld.Player)

	components.Level.Set(entry, ld)
	return entry
}

func extent(entities []level.Entity) (w, h float64) {
	for i := range entities {
		w = math.Max(w, entities[i].Right())
		h = math.Max(h, entities[i].Bottom())
	}
	return w, h
}
