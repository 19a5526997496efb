package opengl

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("pkg", "opengl").Logger().
	Level(zerolog.InfoLevel)

// SetLogger replaces the backend logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}
