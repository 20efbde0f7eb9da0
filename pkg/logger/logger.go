package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init replaces the process logger. Development gets a console writer, every
// other environment gets JSON lines on stdout.
func Init(environment, level string) {
	InitWithWriter(environment, level, os.Stdout)
}

func InitWithWriter(environment, level string, out io.Writer) {
	development := environment == "development"

	if development {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		if development {
			lvl = zerolog.DebugLevel
		}
	}

	log = zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "logisocial").Logger()
}

// Logger exposes the underlying zerolog logger for structured call sites.
func Logger() *zerolog.Logger {
	return &log
}

func Info(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// ErrorWithCause logs the internal cause of a failure that is reported to the client generically.
func ErrorWithCause(err error, format string, v ...interface{}) {
	log.Error().Err(err).Msgf(format, v...)
}
