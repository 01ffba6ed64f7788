package gfx

import (
	"log/slog"
	"os"
)

// logLevel is shared by every package of the module so one call to
// SetLogLevel configures all of them.
var logLevel = new(slog.LevelVar)

// gfxLogger is the logger for the graphics layer.
var gfxLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogLevel sets the minimum level logged by this module.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// Logger returns the module logger. Sub-packages use it so that they share
// the same handler and level.
func Logger() *slog.Logger {
	return gfxLogger
}
