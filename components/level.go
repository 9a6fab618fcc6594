package components

import (
	"github.com/yohamta/donburi"
)

// LevelData is the arena: entity handles in generator order with the player appended last.
// Handles stay valid for the lifetime of the level; entities are deactivated, never removed.
type LevelData struct {
	Entities []*donburi.Entry
	Player   *donburi.Entry
	Index    map[donburi.Entity]int

	Bookmarks         map[string]float64
	BookmarkOrder     []string
	Width             float64
	TotalAchievements int
	TotalFlags        int
}

var Level = donburi.NewComponentType[LevelData]()
