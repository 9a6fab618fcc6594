package systems

import (
	"math"

	"github.com/automoto/retrofolio/components"
	"github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward a point that keeps the player a fixed fraction into the
// viewport. It never scrolls left of the world origin.
func UpdateCamera(e *ecs.ECS) {
	camera := GetCamera(e)
	player := GetPlayer(e)

	targetX := player.X - config.Camera.LeadFraction*camera.Width
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.X = math.Max(0, camera.Position.X)
}

// WarpCamera places the camera without smoothing.
func WarpCamera(e *ecs.ECS, x float64) {
	GetCamera(e).Position.X = math.Max(0, x)
}

// GetCamera returns the camera singleton.
func GetCamera(e *ecs.ECS) *components.CameraData {
	return components.Camera.Get(components.Camera.MustFirst(e.World))
}
