// Package logger provides the process-wide structured logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared zerolog instance. Packages log through it directly,
// e.g. logger.Logger.Info().Str("workflow_id", id).Msg("workflow created").
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger level and output format.
// Levels: debug, info, warn, error. Unknown values fall back to info.
func Init(level string, pretty bool) {
	var out = Logger.Output(os.Stderr)
	if pretty {
		out = Logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	switch strings.ToLower(level) {
	case "debug":
		Logger = out.Level(zerolog.DebugLevel)
	case "warn":
		Logger = out.Level(zerolog.WarnLevel)
	case "error":
		Logger = out.Level(zerolog.ErrorLevel)
	default:
		Logger = out.Level(zerolog.InfoLevel)
	}
}
