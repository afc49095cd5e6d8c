package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/datepick/pkg/files"
	"github.com/pluqqy/datepick/pkg/models"
)

// TestEnvironment provides a temporary project directory for tests that
// read or write settings
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
	cleanup    []func()
}

// NewTestEnvironment creates a new test environment with a temporary directory
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}

	env.cleanup = append(env.cleanup, func() {
		os.Chdir(originalWd)
	})
	for _, k := range []string{files.EnvMode, files.EnvFormat, files.EnvDisableFuture, files.EnvLogPath} {
		env.UnsetEnv(k)
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup performs all cleanup operations
func (e *TestEnvironment) Cleanup() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
	e.cleanup = nil
}

// ChangeToTempDir changes the working directory to the temp directory
func (e *TestEnvironment) ChangeToTempDir() {
	if err := os.Chdir(e.TempDir); err != nil {
		e.t.Fatalf("Failed to change to temp dir: %v", err)
	}
}

// UnsetEnv removes an environment variable for the duration of the test
func (e *TestEnvironment) UnsetEnv(name string) {
	old, had := os.LookupEnv(name)
	os.Unsetenv(name)
	e.cleanup = append(e.cleanup, func() {
		if had {
			os.Setenv(name, old)
		} else {
			os.Unsetenv(name)
		}
	})
}

// InitProjectStructure creates the .datepick directory with default settings
func (e *TestEnvironment) InitProjectStructure() error {
	if err := os.MkdirAll(filepath.Join(e.GetProjectDir(), files.LogsDir), 0755); err != nil {
		return err
	}
	return files.WriteSettingsTo(e.SettingsPath(), models.DefaultSettings())
}

// CreateSettings writes a settings file with custom configuration
func (e *TestEnvironment) CreateSettings(settings *models.Settings) {
	e.t.Helper()

	if err := files.WriteSettingsTo(e.SettingsPath(), settings); err != nil {
		e.t.Fatalf("Failed to write settings file: %v", err)
	}
}

// CreateEnvFile writes a .env file into the temp directory
func (e *TestEnvironment) CreateEnvFile(content string) {
	e.t.Helper()

	if err := os.WriteFile(filepath.Join(e.TempDir, ".env"), []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write .env file: %v", err)
	}
}

// GetProjectDir returns the .datepick directory path
func (e *TestEnvironment) GetProjectDir() string {
	return filepath.Join(e.TempDir, files.DatepickDir)
}

// SettingsPath returns the settings file path inside the temp directory
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GetProjectDir(), files.SettingsFile)
}

// SetupTestEnvironment creates an initialized environment and changes into it
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := NewTestEnvironment(t)
	env.ChangeToTempDir()

	if err := env.InitProjectStructure(); err != nil {
		t.Fatalf("Failed to initialize project structure: %v", err)
	}

	return env
}
