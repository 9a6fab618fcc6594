// Package engine runs one play session: it owns the entity world, steps the simulation, draws
// it and answers the host's discrete requests (start, victory actions, warps).
package engine

import (
	"errors"
	"math"

	"github.com/automoto/retrofolio/assets"
	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/systems"
	"github.com/automoto/retrofolio/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoSurface is returned when the engine is built without a usable viewport.
var ErrNoSurface = errors.New("engine: no drawing surface")

// Input is the held control state handed in once per frame.
type Input = components.InputData

// Linker opens an external link chosen on the victory screen.
type Linker interface {
	Open(url string) error
}

// Links are the call-to-action targets. Empty links make their action a no-op.
type Links struct {
	Contact string
	Resume  string
	Profile string
}

type Options struct {
	Width  int
	Height int
	Seed   int64 // cosmetic randomness only

	Sound  systems.SoundPlayer
	Linker Linker
	Links  Links
	Atlas  *assets.Atlas // nil draws every entity as a flat fill
}

// Engine is the simulation facade. It is not safe for concurrent use: the host calls
// HandleInput, Update and Render in that order from a single goroutine.
type Engine struct {
	ecs    *ecs.ECS
	sound  systems.SoundPlayer
	linker Linker
	links  Links
	atlas  *assets.Atlas

	width  float64
	height float64
	seed   int64
}

// New validates the options and returns an engine with no level loaded.
func New(opts Options) (*Engine, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrNoSurface
	}
	return &Engine{
		sound:  opts.Sound,
		linker: opts.Linker,
		links:  opts.Links,
		atlas:  opts.Atlas,
		width:  float64(opts.Width),
		height: float64(opts.Height),
		seed:   opts.Seed,
	}, nil
}

func logger() *log.Logger {
	return log.WithPrefix("engine")
}

// LoadLevel replaces the world with a fresh one built from data. Counters, camera and the
// player are reset and the phase returns to intro. data itself is not modified.
func (e *Engine) LoadLevel(data *level.Data) {
	w := ecs.NewECS(donburi.NewWorld())
	e.registerSystems(w)

	factory.CreateCamera(w, e.width, e.height)
	factory.CreateGame(w, e.seed, data.TotalAchievements, data.TotalFlags)
	factory.CreateLevel(w, data.Clone())

	e.ecs = w
	logger().Debug("level loaded",
		"entities", len(data.Entities),
		"achievements", data.TotalAchievements,
		"flags", data.TotalFlags)
}

func (e *Engine) registerSystems(w *ecs.ECS) {
	w.AddSystem(systems.WithPhase(systems.UpdateIntro, cfg.PhaseIntro))

	// Gameplay, in tick order. A phase change stops the systems after it.
	w.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdateDeathPlane))
	w.AddSystem(systems.WithPhase(systems.UpdateParticles, cfg.PhasePlaying, cfg.PhaseVictory))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdateHostiles))
	w.AddSystem(systems.WithPhase(systems.UpdateBumps, cfg.PhasePlaying, cfg.PhaseVictory))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdateProgress))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	w.AddSystem(systems.WithPhase(systems.UpdateMessage, cfg.PhasePlaying, cfg.PhaseVictory))

	w.AddSystem(systems.WithPhase(systems.UpdateFireworks, cfg.PhaseVictory))
	w.AddSystem(systems.WithPhase(systems.UpdateVictory, cfg.PhaseVictory))

	// Audio drains last so everything raised this tick is heard this tick
	w.AddSystem(systems.NewUpdateAudio(e.sound))

	w.AddRenderer(cfg.LayerWorld, systems.NewDrawWorld(e.atlas))
	w.AddRenderer(cfg.LayerWorld, systems.DrawColliders)
	w.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	w.AddRenderer(cfg.LayerOverlay, systems.DrawIntro)
	w.AddRenderer(cfg.LayerOverlay, systems.DrawGameOver)
	w.AddRenderer(cfg.LayerOverlay, systems.DrawVictory)
}

// Resize updates the viewport. Non-positive sizes are ignored.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = float64(width), float64(height)
	if e.ecs == nil {
		return
	}
	cam := systems.GetCamera(e.ecs)
	cam.Width, cam.Height = e.width, e.height
}

// StartGame leaves the intro. It reports false in any other phase.
func (e *Engine) StartGame() bool {
	if e.ecs == nil {
		return false
	}
	ok := systems.SetPhase(e.ecs, cfg.PhasePlaying)
	systems.FlushAudio(e.ecs, e.sound)
	return ok
}

// HandleInput applies the held controls to the player. Ignored outside playing.
func (e *Engine) HandleInput(in Input) {
	if e.Phase() != cfg.PhasePlaying {
		return
	}
	systems.ApplyInput(e.ecs, in)
	systems.FlushAudio(e.ecs, e.sound)
}

// Update advances the session by dt seconds. dt is clamped to [0, MaxDeltaTime].
func (e *Engine) Update(dt float64) {
	if e.ecs == nil {
		return
	}
	dt = math.Max(0, math.Min(dt, cfg.Physics.MaxDeltaTime))

	game := systems.GetGame(e.ecs)
	game.DT = dt
	game.Time += dt
	e.ecs.Update()
}

// Render draws the current state. It never changes the simulation.
func (e *Engine) Render(screen *ebiten.Image) {
	if e.ecs == nil || screen == nil {
		return
	}
	e.ecs.Draw(screen)
}

// HandleVictoryAction runs one of the victory screen's actions. It reports whether anything
// happened; outside victory it is always false.
func (e *Engine) HandleVictoryAction(action cfg.VictoryAction) bool {
	if e.Phase() != cfg.PhaseVictory {
		return false
	}
	switch action {
	case cfg.ActionContact:
		return e.open(action, e.links.Contact)
	case cfg.ActionResume:
		return e.open(action, e.links.Resume)
	case cfg.ActionProfile:
		return e.open(action, e.links.Profile)
	case cfg.ActionRestart:
		e.restart()
		return true
	}
	return false
}

// HandleVictoryClick hit tests a screen position against the victory buttons.
func (e *Engine) HandleVictoryClick(x, y float64) bool {
	if e.Phase() != cfg.PhaseVictory {
		return false
	}
	buttons := systems.GetVictory(e.ecs).Buttons
	if len(buttons) == 0 {
		// Not rendered yet
		buttons = systems.VictoryButtons(e.width, e.height)
	}
	for _, b := range buttons {
		if b.Contains(x, y) {
			return e.HandleVictoryAction(b.Action)
		}
	}
	return false
}

func (e *Engine) open(action cfg.VictoryAction, url string) bool {
	if url == "" || e.linker == nil {
		logger().Warn("no link for victory action", "action", action)
		return false
	}
	if err := e.linker.Open(url); err != nil {
		logger().Warn("failed to open link", "action", action, "url", url, "err", err)
		return false
	}
	return true
}

// restart goes back to the intro with zeroed counters and the player at spawn. The arena is
// left as it is: collected pickups and broken blocks stay gone.
func (e *Engine) restart() {
	systems.SetPhase(e.ecs, cfg.PhaseIntro)

	game := systems.GetGame(e.ecs)
	*game = components.GameData{
		Phase:             game.Phase,
		TotalAchievements: game.TotalAchievements,
		TotalFlags:        game.TotalFlags,
		Rand:              game.Rand,
	}

	player := systems.GetPlayer(e.ecs)
	player.X, player.Y = cfg.Player.SpawnX, cfg.Player.SpawnY
	player.VX, player.VY = 0, 0
	player.FacingRight = true

	systems.WarpCamera(e.ecs, 0)
	systems.ResetMessageState(e.ecs)
	systems.ClearParticles(e.ecs)
	systems.GetVictory(e.ecs).Buttons = nil
	logger().Debug("session restarted")
}

// WarpTo moves the player to a bookmark before play gets going. It reports false for unknown
// bookmarks or once the session has ended.
func (e *Engine) WarpTo(bookmark string) bool {
	phase := e.Phase()
	if e.ecs == nil || (phase != cfg.PhaseIntro && phase != cfg.PhasePlaying) {
		return false
	}
	x, ok := systems.GetLevel(e.ecs).Bookmarks[bookmark]
	if !ok {
		return false
	}
	player := systems.GetPlayer(e.ecs)
	player.X = x
	player.VX = 0
	systems.WarpCamera(e.ecs, x-cfg.Camera.WarpOffset)
	logger().Debug("warped", "bookmark", bookmark, "x", x)
	return true
}

// Phase returns the current phase; intro when no level is loaded.
func (e *Engine) Phase() cfg.PhaseID {
	if e.ecs == nil {
		return cfg.PhaseIntro
	}
	return systems.GetGame(e.ecs).Phase
}

// Loaded reports whether LoadLevel has been called.
func (e *Engine) Loaded() bool {
	return e.ecs != nil
}
