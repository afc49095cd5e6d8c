package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/datepick/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	DatepickDir  = ".datepick"
	SettingsFile = "settings.yaml"
	LogsDir      = "logs"
	DefaultLog   = "debug.log"
)

// SettingsPath returns the project settings file path
func SettingsPath() string {
	return filepath.Join(DatepickDir, SettingsFile)
}

// DefaultLogPath returns where the debug log goes when logging is enabled
// without an explicit path.
func DefaultLogPath() string {
	return filepath.Join(DatepickDir, LogsDir, DefaultLog)
}

// InitProjectStructure creates the .datepick directory and writes default
// settings unless a settings file already exists.
func InitProjectStructure() error {
	dirs := []string{
		DatepickDir,
		filepath.Join(DatepickDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SettingsPath()); err == nil {
		return nil
	}
	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads the settings file. A missing file yields the defaults;
// keys absent from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

// ReadSettingsFrom loads settings from path
func ReadSettingsFrom(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings saves settings to the project settings file
func WriteSettings(settings *models.Settings) error {
	return WriteSettingsTo(SettingsPath(), settings)
}

// WriteSettingsTo saves settings to path
func WriteSettingsTo(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
