package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var victoryActions = []cfg.VictoryAction{cfg.ActionContact, cfg.ActionResume, cfg.ActionProfile, cfg.ActionRestart}

// UpdateVictory advances the overlay fade-in
func UpdateVictory(e *ecs.ECS) {
	v := GetVictory(e)
	if v.Fade == nil {
		v.Alpha = 1
		return
	}
	v.Alpha, _ = v.Fade.Update(float32(GetGame(e).DT))
}

// VictoryButtons lays out the call-to-action buttons in rows below the summary card.
func VictoryButtons(width, height float64) []components.ButtonRect {
	o := cfg.Overlay
	perRow := max(o.ButtonsPerRow, 1)
	rowWidth := float64(perRow)*o.ButtonWidth + float64(perRow-1)*o.ButtonGap
	left := (width - rowWidth) / 2
	top := (height-o.CardHeight)/2 + o.CardHeight + o.ButtonGap

	buttons := make([]components.ButtonRect, 0, len(victoryActions))
	for i, a := range victoryActions {
		col, row := i%perRow, i/perRow
		buttons = append(buttons, components.ButtonRect{
			Action: a,
			X:      left + float64(col)*(o.ButtonWidth+o.ButtonGap),
			Y:      top + float64(row)*(o.ButtonHeight+o.ButtonGap),
			W:      o.ButtonWidth,
			H:      o.ButtonHeight,
		})
	}
	return buttons
}

// VictorySummary lists what the run collected, one line each
func VictorySummary(game *components.GameData) []string {
	lines := []string{
		fmt.Sprintf("Achievements: %d/%d", game.Achievements, game.TotalAchievements),
		fmt.Sprintf("Final score: %d", game.Score),
	}
	if len(game.Unlocked) > 0 {
		lines = append(lines, "Skills unlocked: "+strings.Join(game.Unlocked, ", "))
	}
	if len(game.Defeated) > 0 {
		lines = append(lines, "Challenges overcome: "+strings.Join(game.Defeated, ", "))
	}
	if game.TotalFlags > 0 {
		lines = append(lines, fmt.Sprintf("Regions: %d/%d %s", game.Flags, game.TotalFlags, strings.Join(game.FlagCodes, " ")))
	}
	return lines
}

// DrawVictory renders the dimmed summary card and the call-to-action buttons.
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game.Phase != cfg.PhaseVictory {
		return
	}
	v := GetVictory(e)
	o := cfg.Overlay
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), fade(o.VictoryDim, float64(v.Alpha)), false)

	cardX := (width - o.CardWidth) / 2
	cardY := (height - o.CardHeight) / 2
	vector.FillRect(screen, float32(cardX), float32(cardY), float32(o.CardWidth), float32(o.CardHeight), o.CardColor, false)
	vector.StrokeRect(screen, float32(cardX), float32(cardY), float32(o.CardWidth), float32(o.CardHeight), 3, o.CardBorder, false)

	drawTrophy(screen, float32(width/2), float32(cardY+40))

	titleFace := fonts.Title.Get()
	text.Draw(screen, o.VictoryTitle, titleFace, centerTextX(o.VictoryTitle, titleFace, width), int(cardY+120), cfg.Gold) //nolint:staticcheck // TODO: migrate to text/v2

	face := fonts.Regular.Get()
	maxChars := int((o.CardWidth - 40) / (cfg.Message.CharWidth * 0.6))
	y := cardY + 160
	for _, summary := range VictorySummary(game) {
		for _, l := range WrapText(summary, maxChars) {
			text.Draw(screen, l, face, centerTextX(l, face, width), int(y), cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
			y += 24
		}
	}

	v.Buttons = VictoryButtons(width, height)
	bold := fonts.Bold.Get()
	for _, b := range v.Buttons {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), o.ButtonColors[b.Action], false)
		label := o.ButtonLabels[b.Action]
		lw := text.BoundString(bold, label).Dx()                                                          //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, label, bold, int(b.X+(b.W-float64(lw))/2), int(b.Y+b.H/2+7), o.ButtonTextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

func drawTrophy(screen *ebiten.Image, cx, top float32) {
	vector.FillRect(screen, cx-18, top, 36, 26, cfg.Gold, false)
	vector.FillCircle(screen, cx, top+26, 18, cfg.Gold, true)
	vector.StrokeCircle(screen, cx-22, top+12, 8, 3, cfg.Gold, true)
	vector.StrokeCircle(screen, cx+22, top+12, 8, 3, cfg.Gold, true)
	vector.FillRect(screen, cx-4, top+40, 8, 12, cfg.Gold, false)
	vector.FillRect(screen, cx-14, top+50, 28, 6, cfg.Gold, false)
}
