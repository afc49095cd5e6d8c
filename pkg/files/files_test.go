package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/datepick/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	err := InitProjectStructure()
	if err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expectedPaths := []string{
		DatepickDir,
		filepath.Join(DatepickDir, LogsDir),
		SettingsPath(),
	}

	for _, p := range expectedPaths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			t.Errorf("Expected path %s does not exist", p)
		}
	}

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestInitProjectStructure_KeepsExistingSettings(t *testing.T) {
	chdirTemp(t)

	custom := models.DefaultSettings()
	custom.Picker.Mode = "range"
	require.NoError(t, WriteSettings(custom))

	require.NoError(t, InitProjectStructure())

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "range", settings.Picker.Mode)
}

func TestReadSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		wantErr string
		check   func(t *testing.T, s *models.Settings)
	}{
		{
			name:  "missing file yields defaults",
			write: false,
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, models.DefaultSettings(), s)
			},
		},
		{
			name:    "partial file merges over defaults",
			write:   true,
			content: "picker:\n  mode: range\n  disable_future: true\n",
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "range", s.Picker.Mode)
				assert.True(t, s.Picker.DisableFuture)
				assert.Equal(t, models.DefaultSettings().Picker.DateFormat, s.Picker.DateFormat)
				assert.Equal(t, "Select date", s.UI.Placeholder)
			},
		},
		{
			name:    "malformed yaml",
			write:   true,
			content: "picker: [",
			wantErr: "failed to parse settings",
		},
		{
			name:    "invalid mode",
			write:   true,
			content: "picker:\n  mode: weekly\n",
			wantErr: "invalid settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, SettingsFile)
			if tt.write {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			}

			s, err := ReadSettingsFrom(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestWriteSettingsTo_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", SettingsFile)

	s := models.DefaultSettings()
	s.UI.Placeholder = "When?"
	require.NoError(t, WriteSettingsTo(path, s))

	got, err := ReadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "When?", got.UI.Placeholder)
}

func TestApplyEnvOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, s *models.Settings)
	}{
		{
			name: "no variables leaves settings alone",
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, models.DefaultSettings(), s)
			},
		},
		{
			name: "all variables",
			env: map[string]string{
				EnvMode:          "range",
				EnvFormat:        "yyyy-MM-dd",
				EnvDisableFuture: "true",
				EnvLogPath:       "/tmp/datepick.log",
			},
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "range", s.Picker.Mode)
				assert.Equal(t, "yyyy-MM-dd", s.Picker.DateFormat)
				assert.True(t, s.Picker.DisableFuture)
				assert.Equal(t, "/tmp/datepick.log", s.Log.Path)
			},
		},
		{
			name:    "bad boolean",
			env:     map[string]string{EnvDisableFuture: "sometimes"},
			wantErr: EnvDisableFuture,
		},
		{
			name:    "bad mode",
			env:     map[string]string{EnvMode: "multi"},
			wantErr: "invalid mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{EnvMode, EnvFormat, EnvDisableFuture, EnvLogPath} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			s := models.DefaultSettings()
			err := ApplyEnvOverrides(s)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	for _, k := range []string{EnvMode, EnvFormat, EnvDisableFuture, EnvLogPath} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATEPICK_MODE=range\n"), 0644))
	require.NoError(t, WriteSettings(models.DefaultSettings()))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "range", s.Picker.Mode)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	chdirTemp(t)
	assert.NoError(t, LoadEnv())
}
