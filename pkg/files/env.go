package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pluqqy/datepick/pkg/models"
)

// Environment variables that override the settings file
const (
	EnvMode          = "DATEPICK_MODE"
	EnvFormat        = "DATEPICK_FORMAT"
	EnvDisableFuture = "DATEPICK_DISABLE_FUTURE"
	EnvLogPath       = "DATEPICK_LOG_PATH"
)

// LoadEnv loads a .env file from the working directory. A missing file is
// not an error.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load environment file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides copies DATEPICK_* variables over settings
func ApplyEnvOverrides(settings *models.Settings) error {
	if v, ok := os.LookupEnv(EnvMode); ok && v != "" {
		settings.Picker.Mode = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		settings.Picker.DateFormat = v
	}
	if v, ok := os.LookupEnv(EnvDisableFuture); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDisableFuture, err)
		}
		settings.Picker.DisableFuture = b
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok {
		settings.Log.Path = v
	}
	return settings.Validate()
}

// LoadSettings reads .env, the settings file and the environment overrides
// in that order.
func LoadSettings() (*models.Settings, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}
	settings, err := ReadSettings()
	if err != nil {
		return nil, err
	}
	if err := ApplyEnvOverrides(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
