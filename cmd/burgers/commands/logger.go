package commands

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// Logger adapts a logrus logger to burgers.Logger.
type Logger struct {
	logger *log.Logger
}

var _ burgers.Logger = (*Logger)(nil)

// NewLogger returns a text logger writing to writer. Debug messages are only
// emitted when verbose is set.
func NewLogger(writer io.Writer, verbose bool) *Logger {
	logger := log.New()
	logger.SetOutput(writer)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &Logger{logger: logger}
}

// Debug logs msg at debug level with fields attached.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs msg at info level with fields attached.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warn logs msg at warn level with fields attached.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs msg at error level with fields attached.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
