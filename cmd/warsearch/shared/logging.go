package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the console logger, with debug level when verbose.
func SetupLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// SetupLoggerWithLevel configures the console logger from a level name
// (debug, info, warn, error). Unknown names fall back to info.
func SetupLoggerWithLevel(levelName string) *log.Logger {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
