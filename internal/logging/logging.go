// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agiangrant/devicecheck"
)

// Setup points the global logger at w and hands it to the detector.
// Debug enables detector traces.
func Setup(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}

	log.Logger = log.Output(out).With().Timestamp().Logger()
	devicecheck.SetLogger(log.Logger)
}
