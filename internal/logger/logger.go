// Package logger provides the diagnostics logger for shipchat.
package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// Get returns the global diagnostics logger. It writes to shipchat.log in
// the state directory; when the file cannot be opened the logger discards
// everything so UI code never has to care.
func Get() *zerolog.Logger {
	once.Do(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		globalLogger = newFileLogger()
	})
	return &globalLogger
}

func newFileLogger() zerolog.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return zerolog.Nop()
	}

	dir := filepath.Join(home, ".shipchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(filepath.Join(dir, "shipchat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop()
	}

	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(f).With().Timestamp().Logger()
}

// SetVerbose switches the diagnostics level. The level lives in zerolog's
// atomic global, so flipping it is safe against concurrent Get() users.
// Storage write failures are only visible at debug.
func SetVerbose(verbose bool) {
	Get()
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
