// SPDX-License-Identifier: MIT
// Package: tricks/internal/log
//
// log.go — zap construction and the Level flag value.

// Package log builds the zap logger shared by the command line tool.
package log

import (
	"encoding"
	"errors"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned when a level name is not recognized.
var ErrUnknownLevel = errors.New("unknown log level (known: debug, info, warn, error)")

// Level is the verbosity threshold. It decodes from cobra flags and from
// viper config the same way.
type Level int

var (
	_ pflag.Value              = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Supported levels, lowest first.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the lower-case level name. Panics on an unknown level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		// Should not happen.
		panic(ErrUnknownLevel)
	}
}

// Set parses a level name in lower or upper case.
func (l *Level) Set(s string) error {
	switch s {
	case "DEBUG", "debug":
		*l = DEBUG
	case "INFO", "info":
		*l = INFO
	case "WARN", "warn":
		*l = WARN
	case "ERROR", "error":
		*l = ERROR
	default:
		return ErrUnknownLevel
	}
	return nil
}

// Type names the flag value type for help output.
func (l *Level) Type() string {
	return "Level"
}

// UnmarshalText decodes a level from config.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// MarshalYAML encodes the level by name.
func (l Level) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is the subset of *zap.SugaredLogger the rest of the module uses.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

var _ Logger = (*zap.SugaredLogger)(nil)

// New returns a console-encoded zap logger writing to stderr, so demo output
// on stdout stays clean.
func New(level Level) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Local().Format("15:04:05.000"))
	}
	config.Level.SetLevel(level.zapLevel())

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
