package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Unknown levels fall back to
// info; format "json" writes raw JSON lines, anything else a console writer.
func Setup(level, format string) {
	SetupWithWriter(os.Stdout, level, format)
}

// SetupWithWriter is Setup with an explicit destination.
func SetupWithWriter(w io.Writer, level, format string) {
	var output io.Writer = w
	if format != "json" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
