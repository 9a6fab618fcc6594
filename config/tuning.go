package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the subset of configuration that may be overridden from YAML.
// Keys missing from the file keep their built-in values.
type tuningFile struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Phase   PhaseConfig   `yaml:"phase"`
	Score   ScoreConfig   `yaml:"score"`
}

// LoadTuning applies a YAML tuning file on top of the built-in defaults and returns the path
// it loaded, or "" when no file was found.
// Search order: customPath -> ~/.retrofolio/tuning.yaml -> ./configs/tuning.yaml -> defaults
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// ApplyTuning decodes YAML tuning data over the current configuration values.
func ApplyTuning(data []byte) error {
	t := tuningFile{
		Physics: Physics,
		Player:  Player,
		Camera:  Camera,
		Phase:   Phase,
		Score:   Score,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	Physics = t.Physics
	Player = t.Player
	Camera = t.Camera
	Phase = t.Phase
	Score = t.Score
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retrofolio", filename)
}
