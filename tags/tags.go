package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Block     = donburi.NewTag().SetName("Block")
	Goal      = donburi.NewTag().SetName("Goal")
	Coin      = donburi.NewTag().SetName("Coin")
	Hostile   = donburi.NewTag().SetName("Hostile")
	PowerUp   = donburi.NewTag().SetName("PowerUp")
	Flag      = donburi.NewTag().SetName("Flag")
	Billboard = donburi.NewTag().SetName("Billboard")
	Scenery   = donburi.NewTag().SetName("Scenery")
)

// Resolv tags for the collision broadphase
const (
	ResolvSolid = "solid"
	ResolvGoal  = "goal"
	ResolvProbe = "probe"
)
