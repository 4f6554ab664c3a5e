package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/blockpad/pkg/models"
)

const (
	ProjectDir   = ".blockpad"
	PagesDir     = "pages"
	SettingsFile = "settings.yaml"
)

// SettingsPath is the settings file location. BLOCKPAD_SETTINGS overrides it.
func SettingsPath() string {
	if p := os.Getenv("BLOCKPAD_SETTINGS"); p != "" {
		return p
	}
	return filepath.Join(ProjectDir, SettingsFile)
}

// InitProjectStructure creates the project folders and a default settings file
func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, PagesDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	path := filepath.Join(ProjectDir, SettingsFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return WriteSettings(path, models.DefaultSettings())
	}
	return nil
}

// ReadSettings loads settings from SettingsPath. A missing file yields the
// defaults; fields absent from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

func ReadSettingsFrom(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}

	return settings, nil
}

func WriteSettings(path string, settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
