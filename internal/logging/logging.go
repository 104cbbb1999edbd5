// internal/logging/logging.go
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/orbitkit/satctl/internal/config"
)

// Config controls basic logger behaviour.
type Config struct {
	Level    string // debug, info, warn, error
	Format   string // json or text
	Timezone string // IANA name for log timestamp display, e.g. "Europe/Oslo"
}

// New constructs a *slog.Logger writing to stderr so that the interactive
// protocol on stdout stays clean. The timezone only affects how timestamps
// are displayed.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: timeInLocation(cfg.Timezone),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// NewFromEnv constructs a logger from the SATCTL_LOG_* environment
// variables, defaulting to a text handler at info level in local time.
func NewFromEnv() *slog.Logger {
	return New(Config{
		Level:    os.Getenv(config.LogLevelEnvVar),
		Format:   os.Getenv(config.LogFormatEnvVar),
		Timezone: os.Getenv(config.LogTimezoneEnvVar),
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// timeInLocation rewrites record timestamps into the named location.
// An unknown or empty name leaves timestamps in local time.
func timeInLocation(name string) func([]string, slog.Attr) slog.Attr {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			a.Value = slog.TimeValue(a.Value.Time().In(loc))
		}
		return a
	}
}
