package systems

import (
	"fmt"
	"math"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders score, achievement progress, journey dots and the message banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game.Phase == cfg.PhaseIntro {
		return
	}
	h := cfg.HUD
	face := fonts.Bold.Get()

	drawShadowed(screen, fmt.Sprintf("SCORE: %d", game.Score), face, h.ScoreX, h.ScoreY)
	progress := fmt.Sprintf("ACHIEVEMENTS: %d/%d", game.Achievements, game.TotalAchievements)
	if game.TotalFlags > 0 {
		progress += fmt.Sprintf("  FLAGS: %d/%d", game.Flags, game.TotalFlags)
	}
	if game.HasHammer {
		progress += "  HAMMER"
	}
	drawShadowed(screen, progress, fonts.Regular.Get(), h.AchievementX, h.AchievementY)

	width := float32(screen.Bounds().Dx())
	first := width - h.DotRight - float32(len(h.Sections)-1)*h.DotSpacing
	for i, name := range h.Sections {
		c := h.DotUnvisited
		if game.HasVisited(name) {
			c = h.DotVisited
		}
		vector.FillCircle(screen, first+float32(i)*h.DotSpacing, h.DotY, h.DotRadius, c, true)
	}

	small := fonts.Small.Get()
	hintW := text.BoundString(small, h.MuteHint).Dx()                                             //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, h.MuteHint, small, int(width)-hintW-10, screen.Bounds().Dy()-10, cfg.Slate) //nolint:staticcheck // TODO: migrate to text/v2

	drawBanner(e, screen)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x+2, y+2, cfg.HUD.ShadowColor) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)       //nolint:staticcheck // TODO: migrate to text/v2
}

// drawBanner shows the active message in a box sized to its wrapped content.
func drawBanner(e *ecs.ECS, screen *ebiten.Image) {
	msg := getMessageState(e)
	if msg.Timer <= 0 || msg.Text == "" {
		return
	}
	m := cfg.Message
	maxWidth := float64(screen.Bounds().Dx()) - 2*m.BoxX
	lines := WrapText(msg.Text, int((maxWidth-2*m.Padding)/m.CharWidth))

	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}
	w := math.Min(maxWidth, float64(longest)*m.CharWidth+2*m.Padding)
	h := math.Max(m.MinHeight, float64(len(lines))*m.LineHeight+2*m.Padding)

	vector.FillRect(screen, float32(m.BoxX), float32(m.BoxY), float32(w), float32(h), m.BoxColor, false)
	vector.StrokeRect(screen, float32(m.BoxX), float32(m.BoxY), float32(w), float32(h), 3, m.BorderColor, false)

	face := fonts.Regular.Get()
	for i, l := range lines {
		y := m.BoxY + m.Padding + float64(i+1)*m.LineHeight - 6
		text.Draw(screen, l, face, int(m.BoxX+m.Padding), int(y), m.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
