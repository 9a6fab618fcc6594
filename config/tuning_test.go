package config

import (
	"os"
	"path/filepath"
	"testing"
)

func saveTuning(t *testing.T) {
	t.Helper()
	physics, player, camera, phase, score := Physics, Player, Camera, Phase, Score
	t.Cleanup(func() {
		Physics, Player, Camera, Phase, Score = physics, player, camera, phase, score
	})
}

func TestApplyTuningOverridesOnlyGivenKeys(t *testing.T) {
	saveTuning(t)
	friction := Physics.Friction

	err := ApplyTuning([]byte(`
physics:
  gravity: 1200
camera:
  warpOffset: 120
score:
  coin: 5
`))
	if err != nil {
		t.Fatal(err)
	}
	if Physics.Gravity != 1200 || Camera.WarpOffset != 120 || Score.Coin != 5 {
		t.Errorf("overrides not applied: gravity=%v warp=%v coin=%v", Physics.Gravity, Camera.WarpOffset, Score.Coin)
	}
	if Physics.Friction != friction {
		t.Errorf("friction changed to %v", Physics.Friction)
	}
	if Player.TextureID != "hero" {
		t.Errorf("untagged field lost: %q", Player.TextureID)
	}
}

func TestApplyTuningRejectsBadYAML(t *testing.T) {
	saveTuning(t)
	gravity := Physics.Gravity
	if err := ApplyTuning([]byte("physics: [")); err == nil {
		t.Fatal("bad yaml accepted")
	}
	if Physics.Gravity != gravity {
		t.Error("failed parse changed the config")
	}
}

func TestLoadTuning(t *testing.T) {
	saveTuning(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	path, err := LoadTuning("")
	if err != nil || path != "" {
		t.Fatalf("no files: got %q, %v", path, err)
	}

	if _, err := LoadTuning(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file accepted")
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "tuning.yaml"), []byte("phase:\n  introAutoStart: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path, err = LoadTuning("")
	if err != nil || path != filepath.Join("configs", "tuning.yaml") {
		t.Fatalf("got %q, %v", path, err)
	}
	if Phase.IntroAutoStart != 2 {
		t.Errorf("introAutoStart=%v, want 2", Phase.IntroAutoStart)
	}
}

func TestParseVictoryAction(t *testing.T) {
	tests := []struct {
		in   string
		want VictoryAction
		ok   bool
	}{
		{"1", ActionContact, true},
		{"4", ActionRestart, true},
		{"resume", ActionResume, true},
		{"linkedin", ActionProfile, true},
		{"5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseVictoryAction(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseVictoryAction(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
