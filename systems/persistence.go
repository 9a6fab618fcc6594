package systems

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store. Without it settings simply don't persist.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("could not open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result with a nil error means nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("could not parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("could not save settings: %w", err)
	}
	return nil
}

// SaveMuted persists the mute preference, logging instead of failing.
func SaveMuted(muted bool) {
	if err := SaveSettings(&SavedSettings{Muted: muted}); err != nil {
		log.Warn("settings not saved", "error", err)
	}
}
