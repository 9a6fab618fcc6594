// retrofolio plays a portfolio as a side-scrolling platformer. The level is generated from a
// content file: every section of the résumé becomes a zone to run through.
//
// Usage:
//
//	retrofolio [--content path] [--section name] [--watch] [--mute]
//
// Flags:
//
//	--content <path>   - Portfolio YAML or JSON (default: ./content/portfolio.yaml, then built-in)
//	--section <name>   - Start at a bookmark (about, experience, a section id, skills, contact)
//	--tuning <path>    - YAML overrides for physics, camera and scoring
//	--watch            - Regenerate the level when the content file changes
//	--seed <value>     - Seed for cosmetic randomness (0 = time based)
package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/automoto/retrofolio/audio"
	"github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/content"
	"github.com/automoto/retrofolio/fonts"
	"github.com/automoto/retrofolio/scenes"
	"github.com/automoto/retrofolio/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "retrofolio"

var (
	flagContent   string
	flagSection   string
	flagTuning    string
	flagWatch     bool
	flagMute      bool
	flagSeed      int64
	flagDebug     bool
	flagSkipIntro bool
	flagColliders bool
	flagWidth     int
	flagHeight    int
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one logical pixel per device pixel and never shrinks below the minimum height
// the HUD and overlays are laid out for.
func (g *Game) Layout(width, height int) (int, int) {
	height = max(height, config.C.MinHeight)
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Resize(width, height)
	return width, height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "An interactive résumé you can play",
	Long: `retrofolio turns a portfolio file into a retro platformer level.

Controls:
  Arrows/WASD  - Move
  Space/Up     - Jump
  Enter/Space  - Start
  1-4 / click  - Victory screen actions
  R            - Retry after game over
  M            - Toggle sound

Examples:
  retrofolio
  retrofolio --content ./me.yaml --watch
  retrofolio --section skills`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagContent, "content", "", "Path to portfolio YAML/JSON")
	f.StringVar(&flagSection, "section", "", "Bookmark to start at")
	f.StringVar(&flagTuning, "tuning", "", "Path to tuning YAML")
	f.BoolVar(&flagWatch, "watch", false, "Regenerate the level when the content file changes")
	f.BoolVar(&flagMute, "mute", false, "Start muted")
	f.Int64Var(&flagSeed, "seed", 0, "Seed for cosmetic randomness (0 = time based)")
	f.BoolVar(&flagDebug, "debug", false, "Verbose logging")
	f.BoolVar(&flagSkipIntro, "skip-intro", false, "Start playing immediately")
	f.BoolVar(&flagColliders, "colliders", false, "Outline collision boxes")
	f.IntVar(&flagWidth, "width", 0, "Window width")
	f.IntVar(&flagHeight, "height", 0, "Window height")
}

func run(cmd *cobra.Command, _ []string) error {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
	}))
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}
	config.Debug.Verbose = flagDebug
	config.Debug.SkipIntro = flagSkipIntro
	config.Debug.DrawColliders = flagColliders

	path, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("tuning loaded", "path", path)
	}
	if flagWidth > 0 {
		config.C.Width = flagWidth
	}
	if flagHeight > 0 {
		config.C.Height = max(flagHeight, config.C.MinHeight)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}

	portfolio, err := content.Load(flagContent)
	if err != nil {
		return err
	}
	watchPath := flagContent
	if watchPath == "" {
		watchPath = content.LocalPath
	}

	// Initialize persistence and load saved settings
	muted := flagMute
	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("settings will not persist", "err", err)
	} else if saved, err := systems.LoadSettings(); err != nil {
		log.Warn("could not read saved settings", "err", err)
	} else if saved != nil && !cmd.Flags().Changed("mute") {
		muted = saved.Muted
	}

	sound := audio.NewDriver(muted)
	sound.Preload()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene := scenes.NewPortfolioScene(scenes.Options{
		ContentPath: watchPath,
		Portfolio:   portfolio,
		Section:     flagSection,
		Watch:       flagWatch,
		SkipIntro:   config.Debug.SkipIntro,
		Seed:        seed,
		Linker:      scenes.BrowserLinker{},
	}, sound)
	defer scene.Close()

	log.Info("starting", "name", portfolio.Profile.Name, "muted", muted)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(scene))
}
