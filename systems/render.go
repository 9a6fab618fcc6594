package systems

import (
	"image/color"
	"math"

	"github.com/automoto/retrofolio/assets"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/fonts"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/textures"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// NewDrawWorld creates the world renderer: sky, then background kinds, then everything else,
// then particles. Entities outside the viewport's horizontal span are skipped.
func NewDrawWorld(atlas *assets.Atlas) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		game := GetGame(e)
		if game.Phase == cfg.PhaseIntro {
			return
		}
		screen.Fill(cfg.World.SkyColor)

		cam := GetCamera(e)
		camX := math.Floor(cam.Position.X)
		lvl := GetLevel(e)

		for _, background := range []bool{true, false} {
			for _, entry := range lvl.Entities {
				body := components.Body.Get(entry)
				if !body.Active || body.Kind.Background() != background {
					continue
				}
				if body.Right() < camX || body.X > camX+cam.Width {
					continue
				}
				drawEntity(screen, atlas, entry, body, camX, game)
			}
		}

		drawParticles(screen, getParticles(e).Items, camX)
	}
}

func drawEntity(screen *ebiten.Image, atlas *assets.Atlas, entry *donburi.Entry, body *level.Entity, camX float64, game *components.GameData) {
	x := body.X - camX
	y := body.Y
	t := game.Time

	switch body.Kind {
	case level.KindPlayer:
		frame := HeroFrame(body.VX, body.VY, t)
		drawSprite(screen, atlas.Image(frame), x, y, body.W, body.H, !body.FacingRight, body.Color)
		if game.HasHammer {
			drawHeldHammer(screen, atlas.Image(textures.Hammer), body, x, y, game.HammerSwing)
		}

	case level.KindBillboard:
		drawBillboard(screen, body, x, y)

	case level.KindCoin:
		y += math.Sin(t*1000/cfg.World.CoinBobMillis) * cfg.World.CoinBobAmplitude
		drawSprite(screen, atlas.Image(body.TextureID), x, y, body.W, body.H, false, body.Color)
		drawLabel(screen, body.Label, x+body.W/2, y-6)
		if body.MetricLabel != "" {
			drawSmallCentered(screen, body.MetricLabel, x+body.W/2, y+body.H+14, cfg.World.MetricColor)
		}

	case level.KindGoomba:
		x += ShakeOffset(entry, t)
		drawSprite(screen, atlas.Image(body.TextureID), x, y, body.W, body.H, body.FacingRight, body.Color)
		drawLabel(screen, body.Label, x+body.W/2, y-6)

	case level.KindMushroom, level.KindFlag:
		drawSprite(screen, atlas.Image(body.TextureID), x, y, body.W, body.H, false, body.Color)
		drawLabel(screen, body.Label, x+body.W/2, y-6)

	case level.KindQuestion, level.KindUsed, level.KindBrick:
		if entry.HasComponent(components.Bump) {
			y -= components.Bump.Get(entry).Offset
		}
		drawSprite(screen, atlas.Image(body.TextureID), x, y, body.W, body.H, false, body.Color)

	case level.KindGround, level.KindPipe, level.KindCastle, level.KindCloud, level.KindBush,
		level.KindScenery, level.KindParticle, level.KindText:
		drawSprite(screen, atlas.Image(body.TextureID), x, y, body.W, body.H, false, body.Color)
	}
}

// HeroFrame picks the hero texture from velocity: jumping, alternating run frames, or idle.
func HeroFrame(vx, vy, t float64) string {
	if math.Abs(vy) > cfg.Player.JumpFrameSpeed {
		return textures.HeroJump
	}
	if math.Abs(vx) > cfg.Player.RunFrameSpeed {
		if int(t*1000/cfg.Player.RunFrameMillis)%2 == 0 {
			return textures.HeroRun1
		}
		return textures.HeroRun2
	}
	return textures.HeroIdle
}

// HammerAngle is the held hammer's rotation for the remaining swing time: it rises to the peak
// angle halfway through the swing and comes back to rest.
func HammerAngle(swing float64) float64 {
	d := cfg.Boss.SwingDuration
	if swing <= 0 || d <= 0 {
		return 0
	}
	progress := math.Min(1, (d-swing)/d)
	return math.Sin(progress*math.Pi) * cfg.World.HammerSwing
}

// drawHeldHammer draws the hammer at the hero's leading edge, pivoting on its handle.
func drawHeldHammer(screen, img *ebiten.Image, hero *level.Entity, x, y, swing float64) {
	wc := cfg.World
	size := wc.HammerSize
	hx := x - size + wc.HammerInset
	if hero.FacingRight {
		hx = x + hero.W - wc.HammerInset
	}
	hy := y + wc.HammerDrop

	if img == nil {
		vector.FillRect(screen, float32(hx+size/3), float32(hy+size/2), float32(size/4), float32(size*3/4), wc.HammerHandle, false)
		vector.FillRect(screen, float32(hx), float32(hy), float32(size), float32(size/2), wc.HammerHead, false)
		return
	}
	b := img.Bounds()
	pivotX, pivotY := size/2, size*5/6
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	drawOp.GeoM.Translate(-pivotX, -pivotY)
	drawOp.GeoM.Rotate(HammerAngle(swing))
	drawOp.GeoM.Translate(math.Floor(hx+pivotX), math.Floor(hy+pivotY))
	screen.DrawImage(img, drawOp)
}

// drawSprite stretches img over the box, or fills the box with fallback when there is no image.
func drawSprite(screen, img *ebiten.Image, x, y, w, h float64, flip bool, fallback color.RGBA) {
	if img == nil {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fallback, false)
		return
	}
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if flip {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(math.Floor(x), math.Floor(y))
	screen.DrawImage(img, drawOp)
}

func drawBillboard(screen *ebiten.Image, body *level.Entity, x, y float64) {
	wc := cfg.World
	face := fonts.Small.Get()
	titleFace := fonts.Pixel.Get()

	lines := WrapText(body.Content, int((wc.BillboardMaxWidth-2*wc.BillboardPadding)/(cfg.Message.CharWidth*0.6)))
	width := body.W
	for _, l := range append([]string{body.Label}, lines...) {
		width = math.Max(width, float64(text.BoundString(face, l).Dx())+2*wc.BillboardPadding) //nolint:staticcheck // TODO: migrate to text/v2
	}
	width = math.Min(math.Max(width, wc.BillboardMinWidth), wc.BillboardMaxWidth)
	header := 24.0
	height := math.Max(wc.BillboardMinHeight, header+float64(len(lines))*16+wc.BillboardPadding)

	// Pole down to the ground
	poleX := x + width/2 - wc.PoleWidth/2
	vector.FillRect(screen, float32(poleX), float32(y+height), float32(wc.PoleWidth), float32(cfg.Level.GroundY-(y+height)), wc.PoleColor, false)

	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), wc.BillboardFill, false)
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(header), wc.BillboardHeader, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, wc.BillboardBorder, false)

	text.Draw(screen, body.Label, titleFace, int(x+wc.BillboardPadding), int(y+header-7), wc.BillboardTitle) //nolint:staticcheck // TODO: migrate to text/v2
	for i, l := range lines {
		text.Draw(screen, l, face, int(x+wc.BillboardPadding), int(y+header+16+float64(i)*16), wc.BillboardText) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// drawLabel draws outlined text centered on cx with its baseline at y.
func drawLabel(screen *ebiten.Image, s string, cx, y float64) {
	if s == "" {
		return
	}
	face := fonts.Pixel.Get()
	w := text.BoundString(face, s).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	drawOutlined(screen, s, int(cx)-w/2, int(y), cfg.World.LabelColor, cfg.World.LabelOutline)
}

func drawSmallCentered(screen *ebiten.Image, s string, cx, y float64, c color.RGBA) {
	face := fonts.Small.Get()
	w := text.BoundString(face, s).Dx()                //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, int(cx)-w/2, int(y), c) //nolint:staticcheck // TODO: migrate to text/v2
}

func drawOutlined(screen *ebiten.Image, s string, x, y int, fill, outline color.RGBA) {
	face := fonts.Pixel.Get()
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, s, face, x+d[0], y+d[1], outline) //nolint:staticcheck // TODO: migrate to text/v2
	}
	text.Draw(screen, s, face, x, y, fill) //nolint:staticcheck // TODO: migrate to text/v2
}

func drawParticles(screen *ebiten.Image, items []level.Entity, camX float64) {
	for i := range items {
		p := &items[i]
		alpha := ParticleAlpha(p.Life)
		switch p.Kind {
		case level.KindText:
			w := text.BoundString(fonts.Pixel.Get(), p.Label).Dx() //nolint:staticcheck // TODO: migrate to text/v2
			drawOutlined(screen, p.Label, int(p.X-camX)-w/2, int(p.Y), fade(p.Color, alpha), fade(cfg.Black, alpha))
		default:
			vector.FillRect(screen, float32(p.X-camX), float32(p.Y), float32(p.W), float32(p.H), fade(p.Color, alpha), false)
		}
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
