package systems

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/automoto/retrofolio/components"
	cfg "github.com/automoto/retrofolio/config"
	"github.com/automoto/retrofolio/textures"
)

func TestCanTransition(t *testing.T) {
	phases := []cfg.PhaseID{cfg.PhaseIntro, cfg.PhasePlaying, cfg.PhaseVictory, cfg.PhaseGameOver}
	allowed := map[[2]cfg.PhaseID]bool{
		{cfg.PhaseIntro, cfg.PhasePlaying}:    true,
		{cfg.PhasePlaying, cfg.PhaseVictory}:  true,
		{cfg.PhasePlaying, cfg.PhaseGameOver}: true,
		{cfg.PhaseVictory, cfg.PhaseIntro}:    true,
		{cfg.PhaseGameOver, cfg.PhaseIntro}:   true,
	}
	for _, from := range phases {
		for _, to := range phases {
			want := allowed[[2]cfg.PhaseID{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("%v -> %v: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		want     []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks on words", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word alone", "a supercalifragilistic b", 8, []string{"a", "supercalifragilistic", "b"}},
		{"keeps newlines", "one\ntwo three", 20, []string{"one", "two three"}},
		{"drops blank lines", "one\n\n  \ntwo", 20, []string{"one", "two"}},
		{"empty", "", 10, nil},
		{"zero width", "a b", 0, []string{"a", "b"}},
		{"counts runes", "héllo wörld", 11, []string{"héllo wörld"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapText(tt.text, tt.maxChars); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeroFrame(t *testing.T) {
	period := cfg.Player.RunFrameMillis / 1000
	tests := []struct {
		name   string
		vx, vy float64
		t      float64
		want   string
	}{
		{"standing", 0, 0, 0, textures.HeroIdle},
		{"drifting", 5, 0, 0, textures.HeroIdle},
		{"rising", 0, -400, 0, textures.HeroJump},
		{"falling while running", 300, 200, 0, textures.HeroJump},
		{"first run frame", 300, 0, period / 2, textures.HeroRun1},
		{"second run frame", -300, 0, period * 1.5, textures.HeroRun2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeroFrame(tt.vx, tt.vy, tt.t); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life float64
		want float64
	}{
		{2, 1},
		{cfg.Particles.FadeBelow, 1},
		{cfg.Particles.FadeBelow / 2, 0.5},
		{0, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := ParticleAlpha(tt.life); got != tt.want {
			t.Errorf("ParticleAlpha(%v) = %v, want %v", tt.life, got, tt.want)
		}
	}
}

func TestHammerAngle(t *testing.T) {
	d := cfg.Boss.SwingDuration
	tests := []struct {
		name  string
		swing float64
		want  float64
	}{
		{"at rest", 0, 0},
		{"expired", -0.1, 0},
		{"swing starts level", d, 0},
		{"peak halfway", d / 2, cfg.World.HammerSwing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HammerAngle(tt.swing); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HammerAngle(%v) = %v, want %v", tt.swing, got, tt.want)
			}
		})
	}
}

func TestBlinkVisible(t *testing.T) {
	if !BlinkVisible(0.1, 1) || BlinkVisible(0.6, 1) || !BlinkVisible(1.2, 1) {
		t.Error("blink should be on for the first half of each period")
	}
	if !BlinkVisible(0.9, 0) {
		t.Error("non-positive period should always show")
	}
}

func TestVictoryButtons(t *testing.T) {
	buttons := VictoryButtons(1280, 720)
	want := []cfg.VictoryAction{cfg.ActionContact, cfg.ActionResume, cfg.ActionProfile, cfg.ActionRestart}
	if len(buttons) != len(want) {
		t.Fatalf("got %d buttons, want %d", len(buttons), len(want))
	}
	for i, b := range buttons {
		if b.Action != want[i] {
			t.Errorf("button %d is %v, want %v", i, b.Action, want[i])
		}
		if b.X < 0 || b.Y < 0 || b.X+b.W > 1280 || b.Y+b.H > 720 {
			t.Errorf("button %v off screen: %+v", b.Action, b)
		}
		if !b.Contains(b.X+b.W/2, b.Y+b.H/2) {
			t.Errorf("button %v does not contain its centre", b.Action)
		}
		for j, o := range buttons {
			if i != j && b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y {
				t.Errorf("buttons %v and %v overlap", b.Action, o.Action)
			}
		}
	}
}

func TestVictorySummary(t *testing.T) {
	game := &components.GameData{
		Score:             1250,
		Achievements:      7,
		TotalAchievements: 9,
		Flags:             6,
		TotalFlags:        6,
		Unlocked:          []string{"ML"},
		Defeated:          []string{"LEGACY", "BOWSER"},
		FlagCodes:         []string{"US", "GB"},
	}
	got := strings.Join(VictorySummary(game), "\n")
	for _, want := range []string{"7/9", "1250", "ML", "LEGACY, BOWSER", "6/6", "US GB"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	bare := VictorySummary(&components.GameData{TotalAchievements: 3})
	if len(bare) != 2 {
		t.Errorf("empty run summary has %d lines, want 2: %q", len(bare), bare)
	}
}
