package systems

import (
	"math"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHostiles patrols hostiles between their bounds and resolves contact with the player.
// A stomp (player falling, feet above the hostile's midpoint) defeats a regular hostile; any
// other contact with one is harmless. The boss ignores stomps: without the hammer it throws the
// player back, with it a strike starts the shake that ends in its defeat.
func UpdateHostiles(e *ecs.ECS) {
	lvl := GetLevel(e)
	game := GetGame(e)
	player := components.Body.Get(lvl.Player)
	dt := game.DT

	game.HammerSwing = math.Max(0, game.HammerSwing-dt)

	for _, entry := range lvl.Entities {
		if !entry.HasComponent(tags.Hostile) {
			continue
		}
		h := components.Body.Get(entry)
		if !h.Active {
			continue
		}

		if entry.HasComponent(components.Shake) {
			shake := components.Shake.Get(entry)
			shake.Remaining -= dt
			if shake.Remaining <= 0 {
				entry.RemoveComponent(components.Shake)
				defeatHostile(e, h)
			}
			continue
		}

		patrol(h, dt)

		if !player.Overlaps(h) {
			continue
		}
		switch {
		case h.Boss && game.HasHammer:
			startShake(entry)
			game.HammerSwing = cfg.Boss.SwingDuration
			PlaySFX(e, cfg.SoundBump)
			ShowMessage(e, cfg.Boss.StrikeMessage)
		case h.Boss:
			knockBack(player, h)
			PlaySFX(e, cfg.SoundDie)
			ShowMessage(e, cfg.Boss.NeedHammerMessage)
			SpawnBurst(e, player.X+player.W/2, player.Y+player.H/2, cfg.Red)
		case player.VY > 0 && player.Bottom() < h.Y+h.H/2:
			defeatHostile(e, h)
			player.VY = cfg.Player.StompBounce
			PlaySFX(e, cfg.SoundBump)
		}
	}
}

// knockBack throws the player away from h, toward the side it came from.
func knockBack(player, h *level.Entity) {
	dir := 1.0
	if player.X < h.X {
		dir = -1
	}
	player.VX = dir * cfg.Boss.KnockbackSpeed
	player.VY = cfg.Boss.KnockbackLift
}

// patrol moves a hostile at its fixed speed and turns it around at the patrol bounds.
func patrol(h *level.Entity, dt float64) {
	if h.VX == 0 {
		return
	}
	h.X += h.VX * dt
	if h.PatrolMax <= h.PatrolMin {
		return
	}
	speed := math.Abs(h.VX)
	if h.X <= h.PatrolMin {
		h.X = h.PatrolMin
		h.VX = speed
	} else if h.Right() >= h.PatrolMax {
		h.X = h.PatrolMax - h.W
		h.VX = -speed
	}
	h.FacingRight = h.VX > 0
}

func defeatHostile(e *ecs.ECS, h *level.Entity) {
	game := GetGame(e)
	h.Active = false

	if h.Label != "" {
		game.Defeated = append(game.Defeated, h.Label)
	}
	cx, cy := h.X+h.W/2, h.Y+h.H/2

	if h.Boss {
		game.Score += cfg.Score.Boss
		game.Achievements++
		PlaySFX(e, cfg.SoundPowerup)
		colors := cfg.Boss.DefeatColors
		for i := 0; i < cfg.Boss.DefeatBursts && len(colors) > 0; i++ {
			SpawnBurst(e, cx, cy, colors[i%len(colors)])
		}
	} else {
		game.Score += cfg.Score.Stomp
		SpawnBurst(e, cx, cy, h.Color)
	}
	ShowMessage(e, h.DefeatMessage)
}

func startShake(entry *donburi.Entry) {
	entry.AddComponent(components.Shake)
	components.Shake.SetValue(entry, components.ShakeData{Remaining: cfg.Boss.ShakeDuration})
}

// ShakeOffset is the horizontal render offset of a shaking boss.
func ShakeOffset(entry *donburi.Entry, t float64) float64 {
	if !entry.HasComponent(components.Shake) {
		return 0
	}
	return math.Sin(t*60) * cfg.Boss.ShakeAmplitude
}
