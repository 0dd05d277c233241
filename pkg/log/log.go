// Package log provides the structured logging facade used across the
// library, backed by zerolog. Estimators obtain a named logger and emit
// slog-style key/value pairs; applications configure the global level once
// via SetupLogger.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the logging interface handed to estimators. Fields are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

var (
	mu   sync.RWMutex
	root = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// SetupLogger configures the global log level. Accepted levels are
// "debug", "info", "warn", "error" and "disabled"; anything else leaves
// the level at info.
func SetupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	mu.Lock()
	root = root.Level(parsed)
	mu.Unlock()
}

// GetLogger returns the unnamed root logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &zerologAdapter{logger: root}
}

// GetLoggerWithName returns a logger tagged with a component name, e.g.
// "boosting.regressor".
func GetLoggerWithName(name string) Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &zerologAdapter{logger: root.With().Str("logger", name).Logger()}
}

// LogError logs err at error level with its full stack trace when one is
// attached (cockroachdb/errors formats it via %+v).
func LogError(err error, msg string) {
	mu.RLock()
	l := root
	mu.RUnlock()
	l.Error().Str("error", fmt.Sprintf("%+v", err)).Msg(msg)
}

type zerologAdapter struct {
	logger zerolog.Logger
}

func (z *zerologAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Debug(), msg, keysAndValues)
}

func (z *zerologAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Info(), msg, keysAndValues)
}

func (z *zerologAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Warn(), msg, keysAndValues)
}

func (z *zerologAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Error(), msg, keysAndValues)
}

func (z *zerologAdapter) emit(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
