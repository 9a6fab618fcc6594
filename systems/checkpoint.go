package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgress records every bookmark the player has walked past. The visited list only
// grows.
func UpdateProgress(e *ecs.ECS) {
	lvl := GetLevel(e)
	game := GetGame(e)
	x := GetPlayer(e).X

	for _, name := range lvl.BookmarkOrder {
		if x >= lvl.Bookmarks[name] && !game.HasVisited(name) {
			game.Visited = append(game.Visited, name)
		}
	}
}
