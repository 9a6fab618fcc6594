package systems

import (
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the dimmed game over screen with the retry hint
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if GetGame(e).Phase != cfg.PhaseGameOver {
		return
	}
	o := cfg.Overlay
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), o.GameOverDim, false)

	titleFace := fonts.Title.Get()
	text.Draw(screen, o.GameOverTitle, titleFace, centerTextX(o.GameOverTitle, titleFace, width), int(height/2), cfg.Red) //nolint:staticcheck // TODO: migrate to text/v2

	hintFace := fonts.Bold.Get()
	text.Draw(screen, o.GameOverHint, hintFace, centerTextX(o.GameOverHint, hintFace, width), int(height/2)+50, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
}
