package systems

import (
	"fmt"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects coins, power-ups and flags the player overlaps. Collected entities
// are deactivated, so nothing pays out twice.
func UpdatePickups(e *ecs.ECS) {
	lvl := GetLevel(e)
	player := components.Body.Get(lvl.Player)

	for _, entry := range lvl.Entities {
		body := components.Body.Get(entry)
		if !body.Active || !player.Overlaps(body) {
			continue
		}
		switch {
		case entry.HasComponent(tags.Coin):
			collectCoin(e, body)
		case entry.HasComponent(tags.PowerUp):
			collectPowerUp(e, body)
		case entry.HasComponent(tags.Flag):
			collectFlag(e, body)
		}
	}
}

func collectCoin(e *ecs.ECS, coin *level.Entity) {
	game := GetGame(e)
	coin.Active = false
	game.Score += cfg.Score.Coin
	game.Coins++
	game.Achievements++
	PlaySFX(e, cfg.SoundCoin)

	cx, cy := coin.X+coin.W/2, coin.Y
	SpawnText(e, fmt.Sprintf("+%d", cfg.Score.Coin), cx, cy)
	SpawnBurst(e, cx, coin.Y+coin.H/2, cfg.Gold)
	if coin.Content != "" {
		Reveal(e, coin.Content, cx, cy-30)
	}
}

func collectPowerUp(e *ecs.ECS, p *level.Entity) {
	game := GetGame(e)
	p.Active = false
	PlaySFX(e, cfg.SoundPowerup)
	SpawnBurst(e, p.X+p.W/2, p.Y+p.H/2, p.Color)

	switch p.Grant {
	case level.GrantHammer:
		game.HasHammer = true
		game.Score += cfg.Score.Hammer
	default:
		game.Score += cfg.Score.PowerUp
		if p.Label != "" {
			game.Unlocked = append(game.Unlocked, p.Label)
		}
	}
	ShowMessage(e, p.Content)
}

func collectFlag(e *ecs.ECS, f *level.Entity) {
	game := GetGame(e)
	f.Active = false
	game.Score += cfg.Score.Flag
	game.Flags++
	game.FlagCodes = append(game.FlagCodes, f.CountryCode)
	PlaySFX(e, cfg.SoundCoin)
	SpawnText(e, f.CountryCode, f.X+f.W/2, f.Y)

	if game.TotalFlags > 0 && game.Flags == game.TotalFlags {
		game.Score += cfg.Score.AllFlagsBonus
		game.Achievements++
		ShowMessage(e, cfg.Score.AllFlagsMessage)
	}
}
