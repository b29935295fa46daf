package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func init() {
	Logger = newLogger(consoleWriter(os.Stderr), zerolog.InfoLevel)
	log.Logger = Logger
}

func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}
}

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "diskspace").
		Logger()
}

// Configure replaces the global logger. level is a zerolog level name such as
// "debug" or "warn"; console selects human readable output over JSON lines.
func Configure(level string, console bool, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}
	if console {
		out = consoleWriter(out)
	}

	Logger = newLogger(out, lvl)
	log.Logger = Logger
	return nil
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// SetDebugMode switches the logger to debug level.
func SetDebugMode() {
	Logger = Logger.Level(zerolog.DebugLevel)
	log.Logger = Logger
}
