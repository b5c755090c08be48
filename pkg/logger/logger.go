// Package logger is the process-wide structured logger.
//
// Calls take a message followed by key/value pairs:
//
//	logger.Info("plan solved", "run_id", id, "states", n)
//
// A trailing value without a key is logged under "detail".
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Init configures the logger for an environment. "production" writes JSON
// at info level; anything else writes colored console output at debug level.
func Init(environment string) {
	if environment == "production" {
		SetOutput(os.Stderr, zerolog.InfoLevel)
		return
	}

	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, zerolog.DebugLevel)
}

// SetOutput replaces the sink and minimum level. Used by Init and by tests.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	write(zerolog.DebugLevel, msg, args)
}

func Info(msg string, args ...any) {
	write(zerolog.InfoLevel, msg, args)
}

func Warn(msg string, args ...any) {
	write(zerolog.WarnLevel, msg, args)
}

func Error(msg string, args ...any) {
	write(zerolog.ErrorLevel, msg, args)
}

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) {
	write(zerolog.FatalLevel, msg, args)
}

func write(level zerolog.Level, msg string, args []any) {
	mu.RLock()
	l := log
	mu.RUnlock()

	ev := l.WithLevel(level)
	if ev == nil {
		return
	}
	if len(args)%2 == 1 {
		args = append(args[:len(args)-1:len(args)-1], "detail", args[len(args)-1])
	}
	if len(args) > 0 {
		ev = ev.Fields(args)
	}
	ev.Msg(msg)

	if level == zerolog.FatalLevel {
		os.Exit(1)
	}
}
