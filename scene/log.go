package scene

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("pkg", "scene").Logger().
	Level(zerolog.InfoLevel)

// SetVerbose enables or disables debug logging for the scene package.
func SetVerbose(v bool) {
	if v {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}
