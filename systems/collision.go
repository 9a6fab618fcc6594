package systems

import (
	"sort"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/tags"
	"github.com/automoto/retrofolio/textures"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type axis int

const (
	axisX axis = iota
	axisY
)

// resolveCollisions pushes body out of every active solid it overlaps along one axis.
// It returns true when the player touched the goal, which ends the tick.
func resolveCollisions(e *ecs.ECS, entry *donburi.Entry, body *level.Entity, ax axis) bool {
	isPlayer := body.Kind == level.KindPlayer

	for _, other := range solidCandidates(e, entry, body) {
		ob := components.Body.Get(other)
		if !ob.Active || !ob.Solid || !body.Overlaps(ob) {
			continue
		}

		if isPlayer && ob.Kind == level.KindCastle {
			SetPhase(e, cfg.PhaseVictory)
			return true
		}

		switch ax {
		case axisX:
			if body.VX > 0 {
				body.X = ob.X - body.W
			} else if body.VX < 0 {
				body.X = ob.Right()
			}
			body.VX = 0
		case axisY:
			if body.VY > 0 {
				body.Y = ob.Y - body.H
				body.VY = 0
			} else if body.VY < 0 {
				body.Y = ob.Bottom()
				body.VY = 0
				if isPlayer {
					hitBlock(e, other, ob)
				}
			}
		}
	}
	return false
}

// solidCandidates asks the broadphase for solids near body and returns them in arena order.
// Bodies without a collider (the player) are added explicitly.
func solidCandidates(e *ecs.ECS, self *donburi.Entry, body *level.Entity) []*donburi.Entry {
	lvl := GetLevel(e)
	spaceEntry := components.Space.MustFirst(e.World)
	probe := components.Object.Get(spaceEntry)

	pad := cfg.Physics.ProbePadding
	margin := cfg.Physics.SpaceMargin
	probe.X = body.X + margin - pad
	probe.Y = body.Y + margin - pad
	probe.W = body.W + 2*pad
	probe.H = body.H + 2*pad

	var out []*donburi.Entry
	if check := probe.Check(0, 0, tags.ResolvSolid); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
			other, ok := obj.Data.(*donburi.Entry)
			if !ok || other == nil || other == self || !other.Valid() {
				continue
			}
			out = append(out, other)
		}
	}
	if self != lvl.Player && lvl.Player != nil {
		out = append(out, lvl.Player)
	}

	sort.Slice(out, func(i, j int) bool {
		return lvl.Index[out[i].Entity()] < lvl.Index[out[j].Entity()]
	})
	return out
}

// hitBlock is the head bump side effect. Bricks and question blocks both knock loose some
// debris; question blocks then turn into used blocks and pay out once, bricks break. Every other
// solid just stops the jump.
func hitBlock(e *ecs.ECS, entry *donburi.Entry, block *level.Entity) {
	if block.Kind != level.KindQuestion && block.Kind != level.KindBrick {
		return
	}
	game := GetGame(e)
	PlaySFX(e, cfg.SoundBump)
	SpawnBurst(e, block.X+block.W/2, block.Y+block.H/2, block.Color)

	switch block.Kind {
	case level.KindQuestion:
		block.Kind = level.KindUsed
		block.TextureID = textures.UsedBlock
		block.Color = cfg.Level.UsedBlockColor

		game.Score += cfg.Score.QuestionBlock
		game.Coins++
		game.Achievements++
		PlaySFX(e, cfg.SoundCoin)
		startBump(entry)
		Reveal(e, block.Content, block.X+block.W/2, block.Y)

	case level.KindBrick:
		block.Active = false
		removeCollider(e, entry)
		PlaySFX(e, cfg.SoundBreak)
		if block.Content != "" {
			Reveal(e, block.Content, block.X+block.W/2, block.Y)
		}
	}
}

// removeCollider drops an entity from the broadphase. Safe to call on entities without one.
func removeCollider(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

func startBump(entry *donburi.Entry) {
	seq := gween.NewSequence()
	up := float32(cfg.World.BumpHeight)
	seq.Add(
		gween.New(0, up, cfg.World.BumpDuration, ease.OutQuad),
		gween.New(up, 0, cfg.World.BumpDuration, ease.InQuad),
	)
	if !entry.HasComponent(components.Bump) {
		entry.AddComponent(components.Bump)
	}
	components.Bump.SetValue(entry, components.BumpData{Tween: seq})
}

// UpdateBumps advances block bump tweens and drops finished ones.
func UpdateBumps(e *ecs.ECS) {
	dt := float32(GetGame(e).DT)
	var done []*donburi.Entry

	components.Bump.Each(e.World, func(entry *donburi.Entry) {
		bump := components.Bump.Get(entry)
		v, _, finished := bump.Tween.Update(dt)
		bump.Offset = float64(v)
		if finished {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		entry.RemoveComponent(components.Bump)
	}
}
