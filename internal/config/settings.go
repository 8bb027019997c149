package config

import (
	"github.com/google/uuid"

	"github.com/overlearn/overlearn/internal/models"
)

// LoadSettings loads the global settings from ~/.overlearn/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.overlearn/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// EnsureSettings loads the settings and assigns an install ID on first run,
// persisting the file so later loads see the same ID.
func EnsureSettings() (*models.Settings, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings.InstallID != "" {
		return settings, nil
	}

	settings.InstallID = uuid.NewString()
	if err := SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
