// Package logging configures the process-wide zerolog logger used by the
// library and its command-line tools.
//
// Logging is disabled by default so that library consumers see no output
// unless they opt in. Set MP3TAG_LOG_LEVEL (or call SetLevel) to turn on
// diagnostics such as per-frame parse events.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables recognized by Configure.
const (
	EnvLogLevel   = "MP3TAG_LOG_LEVEL"
	EnvLogNoColor = "MP3TAG_LOG_NOCOLOR"
)

var configureOnce sync.Once

// Configure installs the global logger: human-readable console output on
// stderr with RFC3339 timestamps. The level starts at disabled and is
// raised only when MP3TAG_LOG_LEVEL names one.
//
// Safe to call from multiple goroutines; only the first call takes effect.
func Configure() {
	configureOnce.Do(func() {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
			output.NoColor = v
		}

		log.Logger = zerolog.New(output).With().Timestamp().Logger()

		level := zerolog.Disabled
		if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
			level = lvl
		}
		zerolog.SetGlobalLevel(level)
	})
}

// SetLevel raises or lowers the global level after Configure, typically
// from a config file value. Returns false for names it does not know,
// leaving the level unchanged.
func SetLevel(raw string) bool {
	lvl, ok := parseLevel(raw)
	if !ok {
		return false
	}
	zerolog.SetGlobalLevel(lvl)
	return true
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.Disabled, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
