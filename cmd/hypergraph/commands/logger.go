package commands

import (
	"io"
	"sort"

	charmlog "github.com/charmbracelet/log"
)

const logTimeFormat = "15:04:05"

// Logger adapts a charm logger to graph.Logger. Fields become keyvals in
// key order.
type Logger struct {
	charmLogger *charmlog.Logger
}

// NewLogger creates a debug-level logger writing to out.
func NewLogger(out io.Writer) *Logger {
	charmLogger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           charmlog.DebugLevel,
	})
	charmLogger.SetFormatter(charmlog.TextFormatter)

	return &Logger{charmLogger: charmLogger}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.charmLogger.Debug(msg, keyvals(fields)...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.charmLogger.Info(msg, keyvals(fields)...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.charmLogger.Warn(msg, keyvals(fields)...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.charmLogger.Error(msg, keyvals(fields)...)
}

func keyvals(fields map[string]interface{}) []any {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make([]any, 0, len(fields)*2)
	for _, key := range keys {
		out = append(out, key, fields[key])
	}

	return out
}
