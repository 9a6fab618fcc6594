package config

import "image/color"

// WorldRenderConfig contains world-space drawing settings
type WorldRenderConfig struct {
	SkyColor color.RGBA

	// Billboards
	BillboardPadding   float64
	BillboardMinWidth  float64
	BillboardMaxWidth  float64
	BillboardMinHeight float64
	BillboardFill      color.RGBA
	BillboardHeader    color.RGBA
	BillboardBorder    color.RGBA
	BillboardTitle     color.RGBA
	BillboardText      color.RGBA
	PoleColor          color.RGBA
	PoleWidth          float64

	// Pickups and labels
	CoinBobMillis    float64 // coin bob period divisor
	CoinBobAmplitude float64
	LabelColor       color.RGBA
	LabelOutline     color.RGBA
	BumpHeight       float64 // used-block bump tween offset
	BumpDuration     float32
	MetricColor      color.RGBA

	// Held hammer, drawn beside the hero
	HammerSize   float64
	HammerInset  float64 // overlap with the hero's leading edge
	HammerDrop   float64
	HammerSwing  float64 // peak swing angle in radians
	HammerHandle color.RGBA
	HammerHead   color.RGBA
}

// HUDConfig contains screen-space HUD settings
type HUDConfig struct {
	ScoreX, ScoreY             int
	AchievementX, AchievementY int
	TextColor                  color.RGBA
	ShadowColor                color.RGBA

	// Journey dots, one per tracked section
	Sections     []string
	DotRadius    float32
	DotSpacing   float32
	DotY         float32
	DotRight     float32 // distance of the last dot from the right edge
	DotVisited   color.RGBA
	DotUnvisited color.RGBA
	MuteHint     string
}

// OverlayConfig contains intro, game over and victory overlay settings
type OverlayConfig struct {
	// Intro
	IntroTop       color.RGBA
	IntroBottom    color.RGBA
	StarCount      int
	Title          string
	Subtitle       string
	Instructions   []string
	PressStart     string
	BlinkPeriod    float64 // seconds per full blink
	TitleBoxColor  color.RGBA
	TitleBoxBorder color.RGBA

	// Game over
	GameOverDim   color.RGBA
	GameOverTitle string
	GameOverHint  string

	// Victory
	VictoryDim      color.RGBA
	VictoryFadeIn   float32 // seconds for the dim to reach full strength
	VictoryTitle    string
	CardWidth       float64
	CardHeight      float64
	CardColor       color.RGBA
	CardBorder      color.RGBA
	ButtonWidth     float64
	ButtonHeight    float64
	ButtonGap       float64
	ButtonsPerRow   int
	ButtonColors    map[VictoryAction]color.RGBA
	ButtonLabels    map[VictoryAction]string
	ButtonTextColor color.RGBA
}

var World WorldRenderConfig
var HUD HUDConfig
var Overlay OverlayConfig

func init() {
	World = WorldRenderConfig{
		SkyColor: SkyBlue,

		BillboardPadding:   12,
		BillboardMinWidth:  150,
		BillboardMaxWidth:  400,
		BillboardMinHeight: 60,
		BillboardFill:      Navy,
		BillboardHeader:    color.RGBA{R: 30, G: 41, B: 59, A: 255},
		BillboardBorder:    Blue,
		BillboardTitle:     Gold,
		BillboardText:      White,
		PoleColor:          color.RGBA{R: 120, G: 72, B: 32, A: 255},
		PoleWidth:          8,

		CoinBobMillis:    200,
		CoinBobAmplitude: 5,
		LabelColor:       White,
		LabelOutline:     Black,
		BumpHeight:       8,
		BumpDuration:     0.1,
		MetricColor:      Slate,

		HammerSize:   24,
		HammerInset:  5,
		HammerDrop:   5,
		HammerSwing:  -1.5,
		HammerHandle: color.RGBA{R: 139, G: 69, B: 19, A: 255},
		HammerHead:   Gold,
	}

	HUD = HUDConfig{
		ScoreX:       20,
		ScoreY:       35,
		AchievementX: 20,
		AchievementY: 60,
		TextColor:    White,
		ShadowColor:  Black,

		Sections:     []string{"about", "experience", "skills", "contact"},
		DotRadius:    6,
		DotSpacing:   22,
		DotY:         30,
		DotRight:     30,
		DotVisited:   Gold,
		DotUnvisited: color.RGBA{R: 255, G: 255, B: 255, A: 90},
		MuteHint:     "M: mute",
	}

	Overlay = OverlayConfig{
		IntroTop:       color.RGBA{R: 15, G: 23, B: 42, A: 255},
		IntroBottom:    color.RGBA{R: 49, G: 46, B: 129, A: 255},
		StarCount:      60,
		Title:          "CAREER QUEST",
		Subtitle:       "An interactive resume",
		Instructions:   []string{"ARROWS / WASD to move", "SPACE to jump", "Stomp challenges, collect achievements"},
		PressStart:     "PRESS START",
		BlinkPeriod:    1.0,
		TitleBoxColor:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TitleBoxBorder: Gold,

		GameOverDim:   color.RGBA{R: 0, G: 0, B: 0, A: 178},
		GameOverTitle: "GAME OVER",
		GameOverHint:  "Press R to Retry",

		VictoryDim:    color.RGBA{R: 0, G: 0, B: 0, A: 230},
		VictoryFadeIn: 0.5,
		VictoryTitle:  "QUEST COMPLETE!",
		CardWidth:     560,
		CardHeight:    320,
		CardColor:     Navy,
		CardBorder:    Gold,
		ButtonWidth:   180,
		ButtonHeight:  35,
		ButtonGap:     15,
		ButtonsPerRow: 2,
		ButtonColors: map[VictoryAction]color.RGBA{
			ActionContact: {R: 34, G: 197, B: 94, A: 255},
			ActionResume:  {R: 59, G: 130, B: 246, A: 255},
			ActionProfile: {R: 14, G: 118, B: 168, A: 255},
			ActionRestart: {R: 234, G: 88, B: 12, A: 255},
		},
		ButtonLabels: map[VictoryAction]string{
			ActionContact: "1 CONTACT",
			ActionResume:  "2 RESUME",
			ActionProfile: "3 LINKEDIN",
			ActionRestart: "4 PLAY AGAIN",
		},
		ButtonTextColor: White,
	}
}
