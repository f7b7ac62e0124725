// Package logging adapts charmbracelet/log to the domain Logger port.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pomo-dev/pomo/internal/domain"
)

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// Logger writes structured logs to stderr.
type Logger struct {
	l *log.Logger
}

// New creates a Logger at the given level. Unknown levels fall back
// to warn so a typo in the config never silences errors.
func New(level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
		Prefix:          "pomo",
	})
	return &Logger{l: l}
}

func (g *Logger) Debug(msg string, keyvals ...any) { g.l.Debug(msg, keyvals...) }
func (g *Logger) Info(msg string, keyvals ...any)  { g.l.Info(msg, keyvals...) }
func (g *Logger) Warn(msg string, keyvals ...any)  { g.l.Warn(msg, keyvals...) }
func (g *Logger) Error(msg string, keyvals ...any) { g.l.Error(msg, keyvals...) }
