package systems

import (
	"math"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every active gravity body in arena order. Each axis is moved and
// resolved on its own: x first, then y.
func UpdatePhysics(e *ecs.ECS) {
	lvl := GetLevel(e)
	dt := GetGame(e).DT

	for _, entry := range lvl.Entities {
		body := components.Body.Get(entry)
		if !body.Active || !body.Gravity {
			continue
		}

		body.VY += cfg.Physics.Gravity * dt
		body.VX *= cfg.Physics.Friction
		if math.Abs(body.VX) < cfg.Physics.RestEpsilon {
			body.VX = 0
		}

		body.X += body.VX * dt
		if resolveCollisions(e, entry, body, axisX) {
			return // goal reached, everything freezes
		}

		body.Y += body.VY * dt
		if resolveCollisions(e, entry, body, axisY) {
			return
		}
	}
}

// UpdateDeathPlane deactivates anything that fell below the viewport. The player ends the run
// instead of being deactivated.
func UpdateDeathPlane(e *ecs.ECS) {
	lvl := GetLevel(e)
	limit := GetCamera(e).Height + cfg.Physics.DeathMargin

	for _, entry := range lvl.Entities {
		body := components.Body.Get(entry)
		if !body.Active || body.Y <= limit {
			continue
		}
		if entry == lvl.Player {
			SetPhase(e, cfg.PhaseGameOver)
			return
		}
		body.Active = false
		removeCollider(e, entry)
	}
}
