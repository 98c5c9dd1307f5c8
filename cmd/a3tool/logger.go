package main

import (
	"io"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/resolve"
	"github.com/charmbracelet/log"
)

// charmLogger adapts a charmbracelet logger to resolve.Logger.
type charmLogger struct {
	l *log.Logger
}

func newLogger(w io.Writer, verbose bool) resolve.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "a3tool",
		Level:  log.InfoLevel,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
	}
	return &charmLogger{l: l}
}

func (c *charmLogger) Debug(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c *charmLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Info(msg, keysAndValues...)
}

func (c *charmLogger) Warn(msg string, keysAndValues ...interface{}) {
	c.l.Warn(msg, keysAndValues...)
}

func (c *charmLogger) Error(msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, keysAndValues...)
}
