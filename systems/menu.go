package systems

import (
	"image/color"
	"math"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const introBands = 32

// DrawIntro renders the title screen: gradient sky, a fixed star field, the title box and a
// blinking start prompt.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	if game.Phase != cfg.PhaseIntro {
		return
	}
	o := cfg.Overlay
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	band := height / introBands
	for i := 0; i < introBands; i++ {
		c := lerpColor(o.IntroTop, o.IntroBottom, float64(i)/float64(introBands-1))
		vector.FillRect(screen, 0, float32(float64(i)*band), float32(width), float32(band+1), c, false)
	}

	for i := 0; i < o.StarCount; i++ {
		x, y := starPosition(i, width, height)
		vector.FillRect(screen, float32(x), float32(y), 2, 2, cfg.White, false)
	}

	boxW, boxH := 520.0, 150.0
	boxX, boxY := (width-boxW)/2, height*0.2
	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), o.TitleBoxColor, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 4, o.TitleBoxBorder, false)

	titleFace := fonts.Title.Get()
	text.Draw(screen, o.Title, titleFace, centerTextX(o.Title, titleFace, width), int(boxY+70), cfg.Gold) //nolint:staticcheck // TODO: migrate to text/v2
	sub := fonts.Bold.Get()
	text.Draw(screen, o.Subtitle, sub, centerTextX(o.Subtitle, sub, width), int(boxY+115), cfg.White) //nolint:staticcheck // TODO: migrate to text/v2

	face := fonts.Regular.Get()
	y := boxY + boxH + 60
	for _, line := range o.Instructions {
		text.Draw(screen, line, face, centerTextX(line, face, width), int(y), cfg.Slate) //nolint:staticcheck // TODO: migrate to text/v2
		y += 28
	}

	if BlinkVisible(game.Time, o.BlinkPeriod) {
		text.Draw(screen, o.PressStart, sub, centerTextX(o.PressStart, sub, width), int(y+40), cfg.Gold) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// BlinkVisible reports whether a blinking element is shown at time t: on for the first half of
// every period.
func BlinkVisible(t, period float64) bool {
	if period <= 0 {
		return true
	}
	return math.Mod(t, period) < period/2
}

// starPosition scatters stars with a fixed integer hash so the field never flickers.
func starPosition(i int, width, height float64) (float64, float64) {
	h := uint32(i)*2654435761 + 0x9e3779b9
	x := float64(h%10007) / 10007 * width
	y := float64((h>>8)%7919) / 7919 * height * 0.7
	return x, y
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}
