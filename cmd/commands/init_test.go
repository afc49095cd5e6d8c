package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/files"
	"github.com/pluqqy/datepick/pkg/models"
	th "github.com/pluqqy/datepick/pkg/tui/testhelpers"
)

func TestInitCommand_NewProject(t *testing.T) {
	env := th.NewTestEnvironment(t)
	env.ChangeToTempDir()
	messages := captureMessages(t)

	_, err := execute(t, "init")
	require.NoError(t, err)

	assert.FileExists(t, env.SettingsPath())
	assert.DirExists(t, filepath.Join(env.GetProjectDir(), files.LogsDir))
	assert.Contains(t, messages.String(), "Created .datepick folder structure")

	settings, err := files.ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestInitCommand_ExistingSettings(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		answer    string
		wantReset bool
		wantMsg   string
	}{
		{
			name:    "declined",
			args:    []string{"init"},
			answer:  "n\n",
			wantMsg: "Kept existing settings",
		},
		{
			name:    "default answer keeps settings",
			args:    []string{"init"},
			answer:  "\n",
			wantMsg: "Kept existing settings",
		},
		{
			name:      "confirmed",
			args:      []string{"init"},
			answer:    "y\n",
			wantReset: true,
			wantMsg:   "Reset",
		},
		{
			name:      "force",
			args:      []string{"init", "--force"},
			wantReset: true,
			wantMsg:   "Reset",
		},
		{
			name:      "yes flag skips the prompt",
			args:      []string{"init", "--yes"},
			wantReset: true,
			wantMsg:   "Reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, messages := setupProject(t)
			custom := models.DefaultSettings()
			custom.Picker.Mode = "range"
			env.CreateSettings(custom)
			cli.SetIO(strings.NewReader(tt.answer), nil, nil)

			_, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, messages.String(), tt.wantMsg)

			settings, err := files.ReadSettings()
			require.NoError(t, err)
			if tt.wantReset {
				assert.Equal(t, "single", settings.Picker.Mode)
			} else {
				assert.Equal(t, "range", settings.Picker.Mode)
			}
		})
	}
}

func TestInitCommand_KeepsUnrelatedFiles(t *testing.T) {
	env, _ := setupProject(t)
	logFile := filepath.Join(env.GetProjectDir(), files.LogsDir, "debug.log")
	require.NoError(t, os.WriteFile(logFile, []byte("keep"), 0644))

	_, err := execute(t, "init", "--force")
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}
