package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	colliderSolid  = color.RGBA{100, 100, 100, 255}
	colliderGoal   = color.RGBA{0, 255, 0, 255}
	colliderPlayer = color.RGBA{0, 0, 255, 255}
)

// DrawColliders outlines every broadphase object and the player when collider drawing is on.
func DrawColliders(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders || GetGame(e).Phase == cfg.PhaseIntro {
		return
	}
	cam := GetCamera(e)
	margin := cfg.Physics.SpaceMargin
	space := components.Space.Get(components.Space.MustFirst(e.World))

	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			continue
		}
		x := obj.X - margin - cam.Position.X
		if x+obj.W < 0 || x > cam.Width {
			continue
		}
		c := colliderSolid
		if obj.HasTags(tags.ResolvGoal) {
			c = colliderGoal
		}
		outline(screen, x, obj.Y-margin, obj.W, obj.H, c)
	}

	player := GetPlayer(e)
	outline(screen, player.X-cam.Position.X, player.Y, player.W, player.H, colliderPlayer)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x=%.0f y=%.0f vx=%.0f vy=%.0f", player.X, player.Y, player.VX, player.VY), 10, screen.Bounds().Dy()-20)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
