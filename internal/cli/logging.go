package cli

import (
	"log/slog"
	"os"
)

// SetupLogging points the default slog logger at stderr. The tool is
// quiet by default so stdout stays a clean data channel: warnings
// only, -v raises to info, -vv to debug.
func SetupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
