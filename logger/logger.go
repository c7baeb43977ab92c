package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Fallback activations are logged at WARN and
// lost write payloads at ERROR so degraded operation is visible in one place.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

// Init applies LOG_LEVEL from the environment (debug, info, warn, error).
func Init() {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	Log = Log.Level(level)
}
