package uidebug

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/go-theft-auto/uidebug/scene"
)

// logger is shared by every component of the inspector.
// It logs at Info by default; SetVerbose(true) lowers it to Debug.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("pkg", "uidebug").Logger().
	Level(zerolog.InfoLevel)

// SetVerbose enables or disables debug logging for the inspector and the scene tree.
func SetVerbose(v bool) {
	if v {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	scene.SetVerbose(v)
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	return logger.GetLevel() <= zerolog.DebugLevel
}

// SetLogger replaces the inspector logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}
