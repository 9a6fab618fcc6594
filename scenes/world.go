package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/retrofolio/assets"
	"github.com/automoto/retrofolio/audio"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/content"
	"github.com/automoto/retrofolio/engine"
	"github.com/automoto/retrofolio/level"
	"github.com/automoto/retrofolio/systems"
	"github.com/automoto/retrofolio/textures"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configures the portfolio scene
type Options struct {
	ContentPath string // watched for changes when Watch is set
	Portfolio   *content.Portfolio
	Section     string // bookmark to warp to on every level load
	Watch       bool
	SkipIntro   bool
	Seed        int64
	Linker      engine.Linker
}

// PortfolioScene is the host shell: it maps devices to engine calls, regenerates the level on
// retry or content changes and owns the mute toggle.
type PortfolioScene struct {
	opts      Options
	portfolio *content.Portfolio
	sound     *audio.Driver
	engine    *engine.Engine
	watcher   *content.Watcher
	width     int
	height    int
	once      sync.Once
	err       error
}

func NewPortfolioScene(opts Options, sound *audio.Driver) *PortfolioScene {
	return &PortfolioScene{
		opts:      opts,
		portfolio: opts.Portfolio,
		sound:     sound,
		width:     cfg.C.Width,
		height:    cfg.C.Height,
	}
}

func (ps *PortfolioScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	ps.pollContent()

	actions := systems.PollActions()
	if actions[cfg.ActionMute].JustPressed {
		muted := ps.sound.ToggleMute()
		systems.SaveMuted(muted)
		log.Debug("mute toggled", "muted", muted)
	}

	switch ps.engine.Phase() {
	case cfg.PhaseIntro:
		if actions[cfg.ActionStart].JustPressed {
			ps.engine.StartGame()
			// The start key doubles as jump; let it go before it moves the hero
			ps.engine.Update(ps.dt())
			return nil
		}
	case cfg.PhaseGameOver:
		if actions[cfg.ActionRetry].JustPressed {
			ps.loadLevel()
			return nil
		}
	case cfg.PhaseVictory:
		if action, ok := systems.PollVictoryKey(); ok {
			ps.engine.HandleVictoryAction(action)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			ps.engine.HandleVictoryClick(float64(x), float64(y))
		}
	}

	ps.engine.HandleInput(systems.ControlsFrom(actions))
	ps.engine.Update(ps.dt())
	return nil
}

func (ps *PortfolioScene) dt() float64 {
	return 1 / float64(ebiten.TPS())
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.engine == nil {
		return
	}
	ps.engine.Render(screen)
}

// Resize forwards the logical screen size to the engine
func (ps *PortfolioScene) Resize(width, height int) {
	if width == ps.width && height == ps.height {
		return
	}
	ps.width, ps.height = width, height
	if ps.engine != nil {
		ps.engine.Resize(width, height)
	}
}

// Close stops the content watcher
func (ps *PortfolioScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

func (ps *PortfolioScene) configure() {
	e, err := engine.New(engine.Options{
		Width:  ps.width,
		Height: ps.height,
		Seed:   ps.opts.Seed,
		Sound:  ps.sound,
		Linker: ps.opts.Linker,
		Links:  LinksFrom(ps.portfolio.Contact),
		Atlas:  assets.NewAtlas(textures.New()),
	})
	if err != nil {
		ps.err = err
		return
	}
	ps.engine = e
	ps.loadLevel()

	if ps.opts.Watch && ps.opts.ContentPath != "" {
		w, err := content.NewWatcher(ps.opts.ContentPath)
		if err != nil {
			log.Warn("content watch unavailable", "path", ps.opts.ContentPath, "err", err)
		} else {
			ps.watcher = w
			log.Info("watching content", "path", ps.opts.ContentPath)
		}
	}
}

// loadLevel regenerates the level from the current content and applies the requested warp.
func (ps *PortfolioScene) loadLevel() {
	data := level.Generate(ps.portfolio)
	ps.engine.LoadLevel(data)

	if ps.opts.Section != "" && !ps.engine.WarpTo(ps.opts.Section) {
		log.Warn("unknown section, starting from the beginning", "section", ps.opts.Section, "sections", data.BookmarkOrder)
	}
	if ps.opts.SkipIntro {
		ps.engine.StartGame()
	}
}

// pollContent reloads the level when the watched content file changes. Broken edits keep the
// last good content.
func (ps *PortfolioScene) pollContent() {
	if ps.watcher == nil {
		return
	}
	select {
	case path, ok := <-ps.watcher.Events:
		if !ok {
			ps.watcher = nil
			return
		}
		p, err := content.Load(path)
		if err != nil {
			log.Warn("content reload failed", "path", path, "err", err)
			return
		}
		ps.portfolio = p
		ps.loadLevel()
		log.Info("content reloaded", "path", path)
	case err, ok := <-ps.watcher.Errors:
		if ok {
			log.Warn("content watch error", "err", err)
		}
	default:
	}
}
