package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/pluqqy/datepick/internal/applog"
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/files"
	"github.com/pluqqy/datepick/pkg/models"
	"github.com/pluqqy/datepick/pkg/picker"
)

// CommandContext carries settings, logger and clock shared by commands
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Clock       calendar.Clock
	logger      *log.Logger
	validated   bool
}

// NewCommandContext loads settings (file, .env, environment) and builds the
// debug logger.
func NewCommandContext() (*CommandContext, error) {
	settings, err := files.LoadSettings()
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		ProjectPath: files.DatepickDir,
		Settings:    settings,
		Clock:       calendar.SystemClock{},
		logger:      applog.New(settings.Log),
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'datepick init' first", files.DatepickDir)
	}

	c.validated = true
	return nil
}

// Logger returns the debug logger
func (c *CommandContext) Logger() *log.Logger {
	if c.logger == nil {
		c.logger = applog.New(c.Settings.Log)
	}
	return c.logger
}

// Mode returns the configured selection mode, overridden by rangeFlag
func (c *CommandContext) Mode(rangeFlag bool) (picker.Mode, error) {
	if rangeFlag {
		return picker.Range, nil
	}
	return c.Settings.Picker.SelectionMode()
}

// PickerOptions returns options from settings plus the context clock and
// logger. Later options override earlier ones.
func (c *CommandContext) PickerOptions(extra ...picker.Option) ([]picker.Option, error) {
	opts, err := c.Settings.PickerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, picker.WithClock(c.Clock), picker.WithLogger(c.Logger()))
	return append(opts, extra...), nil
}
