package config

import "image/color"

// LevelConfig contains the level generator's layout constants
type LevelConfig struct {
	GroundY    float64
	TileSize   float64
	DirtDepth  float64
	StartX     float64
	GroundTail float64 // ground continues this far past the last placed entity

	// Section selection
	RedundantSectionID string
	MaxZones           int
	FlagSectionID      string
	MaxFlags           int
	PowerUpSectionID   string
	DefaultCountries   []string

	// Patrol speeds, one per zone index
	PatrolSpeeds []float64
	BossSpeed    float64

	// Spacing
	BillboardWidth  float64
	BillboardHeight float64
	ZoneGap         float64
	CloudSpacing    float64
	BushSpacing     float64

	// Colors for entities that carry no texture or want a tinted fallback
	GroundColor    color.RGBA
	DirtColor      color.RGBA
	WallColor      color.RGBA
	BillboardColor color.RGBA
	CoinColor      color.RGBA
	QuestionColor  color.RGBA
	UsedBlockColor color.RGBA
	BrickColor     color.RGBA
	PipeColor      color.RGBA
	HostileColor   color.RGBA
	PowerUpColor   color.RGBA
	FlagColor      color.RGBA
	CastleColor    color.RGBA
	CloudColor     color.RGBA
	BushColor      color.RGBA
}

var Level LevelConfig

func init() {
	Level = LevelConfig{
		GroundY:    500,
		TileSize:   50,
		DirtDepth:  300,
		StartX:     120,
		GroundTail: 400,

		RedundantSectionID: "overview",
		MaxZones:           3,
		FlagSectionID:      "governance",
		MaxFlags:           6,
		PowerUpSectionID:   "ai",
		DefaultCountries:   []string{"DE", "CH", "US", "GB", "IN", "SG", "FR", "NL", "ES", "IT", "JP"},

		PatrolSpeeds: []float64{-35, -40, -30},
		BossSpeed:    -45,

		BillboardWidth:  180,
		BillboardHeight: 100,
		ZoneGap:         80,
		CloudSpacing:    300,
		BushSpacing:     450,

		GroundColor:    color.RGBA{R: 156, G: 74, B: 0, A: 255},
		DirtColor:      color.RGBA{R: 112, G: 53, B: 0, A: 255},
		WallColor:      Black,
		BillboardColor: DeepNavy,
		CoinColor:      Gold,
		QuestionColor:  color.RGBA{R: 248, G: 147, B: 29, A: 255},
		UsedBlockColor: color.RGBA{R: 120, G: 53, B: 15, A: 255},
		BrickColor:     color.RGBA{R: 178, G: 34, B: 34, A: 255},
		PipeColor:      color.RGBA{R: 0, G: 170, B: 0, A: 255},
		HostileColor:   color.RGBA{R: 139, G: 69, B: 19, A: 255},
		PowerUpColor:   color.RGBA{R: 220, G: 38, B: 38, A: 255},
		FlagColor:      White,
		CastleColor:    color.RGBA{R: 226, G: 232, B: 240, A: 255},
		CloudColor:     White,
		BushColor:      Green,
	}
}
