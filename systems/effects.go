package systems

import (
	"image/color"
	"math"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles ages particles and floating text, moves them and removes the expired ones
// in place.
func UpdateParticles(e *ecs.ECS) {
	ps := getParticles(e)
	dt := GetGame(e).DT

	live := ps.Items[:0]
	for i := range ps.Items {
		p := ps.Items[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		if p.Gravity {
			p.VY += cfg.Physics.Gravity * dt
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		live = append(live, p)
	}
	// Clear the tail so dropped strings can be collected
	for i := len(live); i < len(ps.Items); i++ {
		ps.Items[i] = level.Entity{}
	}
	ps.Items = live
}

// UpdateFireworks launches celebratory bursts at random while the victory screen is up.
func UpdateFireworks(e *ecs.ECS) {
	game := GetGame(e)
	if game.Rand.Float64() >= cfg.Phase.FireworkChance {
		return
	}
	cam := GetCamera(e)
	x := cam.Position.X + game.Rand.Float64()*cam.Width
	y := game.Rand.Float64() * cam.Height / 2
	SpawnFirework(e, x, y)
}

// SpawnBurst throws a handful of debris particles upward from a point.
func SpawnBurst(e *ecs.ECS, x, y float64, c color.RGBA) {
	ps := getParticles(e)
	r := GetGame(e).Rand
	pc := cfg.Particles
	for i := 0; i < pc.BurstCount; i++ {
		ps.Items = append(ps.Items, level.Entity{
			Kind:    level.KindParticle,
			X:       x,
			Y:       y,
			W:       pc.BurstSize,
			H:       pc.BurstSize,
			VX:      (r.Float64() - 0.5) * pc.BurstSpreadX,
			VY:      -pc.BurstLiftMin - r.Float64()*pc.BurstLiftRange,
			Active:  true,
			Gravity: true,
			Color:   c,
			Life:    pc.BurstLife,
		})
	}
}

// SpawnFirework explodes particles evenly around a point in one random color.
func SpawnFirework(e *ecs.ECS, x, y float64) {
	ps := getParticles(e)
	r := GetGame(e).Rand
	pc := cfg.Particles
	c := pc.FireworkColors[r.Intn(len(pc.FireworkColors))]
	for i := 0; i < pc.FireworkCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(pc.FireworkCount)
		speed := pc.FireworkSpeedMin + r.Float64()*pc.FireworkSpeedRange
		ps.Items = append(ps.Items, level.Entity{
			Kind:    level.KindParticle,
			X:       x,
			Y:       y,
			W:       pc.FireworkSize,
			H:       pc.FireworkSize,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Active:  true,
			Gravity: true,
			Color:   c,
			Life:    pc.FireworkLife,
		})
	}
}

// SpawnText adds a floating label that rises and fades.
func SpawnText(e *ecs.ECS, text string, x, y float64) {
	ps := getParticles(e)
	ps.Items = append(ps.Items, level.Entity{
		Kind:   level.KindText,
		X:      x,
		Y:      y,
		VY:     cfg.Particles.TextRise,
		Active: true,
		Color:  cfg.White,
		Label:  text,
		Life:   cfg.Particles.TextLife,
	})
}

// ParticleAlpha is the draw opacity for a particle with the given remaining life.
func ParticleAlpha(life float64) float64 {
	if life >= cfg.Particles.FadeBelow {
		return 1
	}
	return math.Max(0, life/cfg.Particles.FadeBelow)
}

func getParticles(e *ecs.ECS) *components.ParticlesData {
	return components.Particles.Get(components.Particles.MustFirst(e.World))
}

// ClearParticles drops every live particle.
func ClearParticles(e *ecs.ECS) {
	ps := getParticles(e)
	clear(ps.Items)
	ps.Items = ps.Items[:0]
}
