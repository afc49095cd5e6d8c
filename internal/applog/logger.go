// Package applog builds the rotating debug logger used by the picker and
// the terminal UI. The terminal owns stdout while a picker is open, so all
// diagnostics go to a file.
package applog

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pluqqy/datepick/pkg/models"
)

const Prefix = "DATEPICK: "

// New returns a logger writing to the rotating file named in settings.
// An empty path disables logging.
func New(settings models.LogSettings) *log.Logger {
	w := Writer(settings)
	return log.New(w, Prefix, log.LstdFlags)
}

// Writer returns the rotating writer behind New
func Writer(settings models.LogSettings) io.Writer {
	if settings.Path == "" {
		return io.Discard
	}

	path := os.ExpandEnv(settings.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return io.Discard
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    settings.MaxSizeMB, // megabytes before it rotates
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays,
		Compress:   settings.Compress,
	}
}
