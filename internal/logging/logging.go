package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "videodefs/"

// Levels are read from the PION_LOG_* environment variables, e.g.
// PION_LOG_WARN=videodefs/frame.
var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a logger for a package of this module.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scopePrefix + scope)
}
