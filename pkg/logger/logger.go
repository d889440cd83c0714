// Package logger wraps zerolog behind a process-wide logger with
// env-driven level and format.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config controls log level and output format.
type Config struct {
	Level  string // debug/info/warn/error/fatal
	Format string // json/console
}

// DefaultConfig returns the settings used when Init is never called.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// Init configures the process logger. Subsequent calls are no-ops.
func Init(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(parseLevel(cfg.Level))

		var output io.Writer = os.Stdout
		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        os.Stdout,
				TimeFormat: time.RFC3339,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the process logger, initializing defaults if needed.
func Get() *zerolog.Logger {
	Init(DefaultConfig())
	return &logger
}
