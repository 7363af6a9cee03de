// Package logger provides a context-aware logging facade on top of zap.
package logger

import (
	"context"
	"os"

	"github.com/KretovDmitry/payments-engine/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface the application codes against.
type Logger interface {
	// With returns a logger with the given key-value pairs attached.
	With(ctx context.Context, args ...interface{}) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

var _ Logger = (*logger)(nil)

// New creates a logger writing to stderr and, when a file path is
// configured, to a size-rotated log file. Stdout is never used: it
// belongs to the summary output.
func New(cfg *config.Config) Logger {
	level := zapcore.InfoLevel
	if cfg.Logger.Level != "" {
		if parsed, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
			level = parsed
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if cfg.Logger.Path != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Logger.Path,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAgeDays,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileSink,
			level,
		))
	}

	return NewWithZap(zap.New(zapcore.NewTee(cores...)))
}

// NewWithZap creates a logger from an existing zap logger.
// Intended mostly for tests.
func NewWithZap(l *zap.Logger) Logger {
	return &logger{l.Sugar()}
}

// With returns a logger with the given key-value pairs attached. The
// context is accepted for call-site symmetry; values carried by it are
// not inspected.
func (l *logger) With(_ context.Context, args ...interface{}) Logger {
	if len(args) > 0 {
		return &logger{l.SugaredLogger.With(args...)}
	}
	return l
}
