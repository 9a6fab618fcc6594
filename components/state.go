package components

import (
	"math/rand"

	cfg "github.com/automoto/retrofolio/config"
	"github.com/yohamta/donburi"
)

// GameData is the per-engine session state.
type GameData struct {
	Phase cfg.PhaseID

	Score             int
	Coins             int
	Achievements      int
	TotalAchievements int
	Flags             int
	TotalFlags        int
	HasHammer         bool
	HammerSwing       float64 // seconds left on the strike animation

	// Append-only, in the order they happened
	Visited   []string
	Unlocked  []string
	Defeated  []string
	FlagCodes []string

	IntroTimer float64
	Time       float64 // seconds since level load, drives cosmetic animation
	DT         float64 // clamped delta of the current tick

	// Cosmetic randomness only. Physics never reads it.
	Rand *rand.Rand
}

// HasVisited reports whether a section threshold has been crossed.
func (g *GameData) HasVisited(name string) bool {
	for _, v := range g.Visited {
		if v == name {
			return true
		}
	}
	return false
}

var Game = donburi.NewComponentType[GameData]()
