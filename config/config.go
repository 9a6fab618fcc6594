package config

import "image/color"

// PhysicsConfig contains world-level simulation constants. Units are world pixels and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // downward acceleration (px/s^2)
	Friction     float64 `yaml:"friction"`     // vx multiplier applied every tick
	RestEpsilon  float64 `yaml:"restEpsilon"`  // |vx| below this snaps to zero
	MaxDeltaTime float64 `yaml:"maxDeltaTime"` // dt clamp after tab suspend or hitches
	DeathMargin  float64 `yaml:"deathMargin"`  // death plane sits this far below the viewport

	// Broadphase
	SpaceCellSize int     `yaml:"spaceCellSize"`
	SpaceMargin   float64 `yaml:"spaceMargin"`  // offset between world and resolv space coordinates
	ProbePadding  float64 `yaml:"probePadding"` // broadphase query grows the box by this much
}

// PlayerConfig contains the hero's spawn, size and movement values
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`

	JumpImpulse float64 `yaml:"jumpImpulse"` // vy set on jump (negative is up)
	MoveAccel   float64 `yaml:"moveAccel"`   // vx added per input tick while a direction is held
	MaxSpeed    float64 `yaml:"maxSpeed"`
	StompBounce float64 `yaml:"stompBounce"` // vy set after defeating a hostile from above

	// Animation selection
	JumpFrameSpeed float64 `yaml:"jumpFrameSpeed"` // |vy| above this shows the jump frame
	RunFrameSpeed  float64 `yaml:"runFrameSpeed"`  // |vx| above this shows run frames
	RunFrameMillis float64 `yaml:"runFrameMillis"` // run frames alternate at this period

	Color     color.RGBA `yaml:"-"`
	TextureID string     `yaml:"-"`
}

// CameraConfig contains horizontal follow camera settings
type CameraConfig struct {
	LeadFraction    float64 `yaml:"leadFraction"`    // player sits this far into the viewport
	FollowSmoothing float64 `yaml:"followSmoothing"` // fraction of the gap closed per tick
	WarpOffset      float64 `yaml:"warpOffset"`      // camera x = bookmark - WarpOffset on deep links
}

// PhaseConfig contains game phase timing
type PhaseConfig struct {
	IntroAutoStart float64 `yaml:"introAutoStart"` // seconds before intro starts by itself
	FireworkChance float64 `yaml:"fireworkChance"` // per-tick burst probability during victory
}

// ScoreConfig contains score awards per gameplay event
type ScoreConfig struct {
	Coin          int `yaml:"coin"`
	QuestionBlock int `yaml:"questionBlock"`
	Stomp         int `yaml:"stomp"`
	PowerUp       int `yaml:"powerUp"`
	Hammer        int `yaml:"hammer"`
	Flag          int `yaml:"flag"`
	AllFlagsBonus int `yaml:"allFlagsBonus"`
	Boss          int `yaml:"boss"`

	AllFlagsMessage string `yaml:"allFlagsMessage"`
}

// BossConfig contains the hammer fight settings
type BossConfig struct {
	ShakeDuration  float64 // seconds the boss shakes before going down
	ShakeAmplitude float64 // render offset in pixels
	SwingDuration  float64 // seconds the held hammer swings after a strike

	// Touching the boss without the hammer throws the player back
	KnockbackSpeed float64
	KnockbackLift  float64

	DefeatBursts int
	DefeatColors []color.RGBA

	NeedHammerMessage string
	StrikeMessage     string
}

// MessageConfig contains banner and floating text settings
type MessageConfig struct {
	Duration          float64 // banner lifetime in seconds
	FloatingThreshold int     // revealed text longer than this goes to the banner

	// Banner layout
	BoxX        float64
	BoxY        float64
	Padding     float64
	LineHeight  float64
	MinHeight   float64
	CharWidth   float64 // approximate glyph advance used for wrapping
	BoxColor    color.RGBA
	BorderColor color.RGBA
	TextColor   color.RGBA
}

// ParticleConfig contains burst, firework and floating text settings
type ParticleConfig struct {
	BurstCount     int
	BurstSize      float64
	BurstSpreadX   float64
	BurstLiftMin   float64
	BurstLiftRange float64
	BurstLife      float64

	FireworkCount      int
	FireworkSize       float64
	FireworkSpeedMin   float64
	FireworkSpeedRange float64
	FireworkLife       float64
	FireworkColors     []color.RGBA

	TextLife  float64
	TextRise  float64
	FadeBelow float64 // particles fade out over their final second
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	MinHeight int
	Title     string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Camera CameraConfig
var Phase PhaseConfig
var Score ScoreConfig
var Boss BossConfig
var Message MessageConfig
var Particles ParticleConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro     bool
	Verbose       bool
	DrawColliders bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Red          = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Green        = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Blue         = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Slate        = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	Navy         = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	DeepNavy     = color.RGBA{R: 26, G: 26, B: 46, A: 255}
	SkyBlue      = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:     1280,
		Height:    720,
		MinHeight: 600,
		Title:     "Retrofolio",
	}

	Physics = PhysicsConfig{
		Gravity:      1800,
		Friction:     0.85,
		RestEpsilon:  0.01,
		MaxDeltaTime: 0.1,
		DeathMargin:  100,

		SpaceCellSize: 32,
		SpaceMargin:   256,
		ProbePadding:  2,
	}

	Player = PlayerConfig{
		Width:  40,
		Height: 40,
		SpawnX: 100,
		SpawnY: 0,

		JumpImpulse: -850,
		MoveAccel:   50,
		MaxSpeed:    400,
		StompBounce: -400,

		JumpFrameSpeed: 50,
		RunFrameSpeed:  10,
		RunFrameMillis: 100,

		Color:     Red,
		TextureID: "hero",
	}

	Camera = CameraConfig{
		LeadFraction:    0.3,
		FollowSmoothing: 0.1,
		WarpOffset:      300,
	}

	Phase = PhaseConfig{
		IntroAutoStart: 5.0,
		FireworkChance: 0.1,
	}

	Score = ScoreConfig{
		Coin:          100,
		QuestionBlock: 100,
		Stomp:         100,
		PowerUp:       50,
		Hammer:        200,
		Flag:          25,
		AllFlagsBonus: 200,
		Boss:          500,

		AllFlagsMessage: "All regions covered! +200",
	}

	Boss = BossConfig{
		ShakeDuration:  1.0,
		ShakeAmplitude: 4,
		SwingDuration:  0.5,

		KnockbackSpeed: 400,
		KnockbackLift:  -350,

		DefeatBursts: 20,
		DefeatColors: []color.RGBA{Gold, Green, Blue, Red},

		NeedHammerMessage: "You need the Hammer to defeat the final boss!",
		StrikeMessage:     "Striking the final boss with the Hammer!",
	}

	Message = MessageConfig{
		Duration:          5.0,
		FloatingThreshold: 15,

		BoxX:        20,
		BoxY:        100,
		Padding:     20,
		LineHeight:  24,
		MinHeight:   80,
		CharWidth:   14,
		BoxColor:    color.RGBA{R: 0, G: 0, B: 0, A: 217},
		BorderColor: Gold,
		TextColor:   White,
	}

	Particles = ParticleConfig{
		BurstCount:     4,
		BurstSize:      8,
		BurstSpreadX:   300,
		BurstLiftMin:   200,
		BurstLiftRange: 200,
		BurstLife:      1.0,

		FireworkCount:      20,
		FireworkSize:       6,
		FireworkSpeedMin:   100,
		FireworkSpeedRange: 200,
		FireworkLife:       1.5,
		FireworkColors: []color.RGBA{
			{R: 255, G: 0, B: 0, A: 255},
			{R: 0, G: 255, B: 0, A: 255},
			{R: 0, G: 0, B: 255, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
			{R: 255, G: 0, B: 255, A: 255},
		},

		TextLife:  1.5,
		TextRise:  -60,
		FadeBelow: 1.0,
	}
}
