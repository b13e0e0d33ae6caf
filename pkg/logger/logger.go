// Package logger keeps the service's zap logger in the request context.
//
// Every entry carries the service name; request and job scoped fields are
// added with WithFields as the context travels through handlers, use cases
// and workers.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable lines at debug level.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"

	// ServiceName is attached to every entry as the "service" field.
	ServiceName = "bincatalog"
)

// defaultLogger is used when the context carries no logger. It discards
// everything until Setup is called.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

type setupOptions struct {
	level string
}

// Option customizes Setup.
type Option func(*setupOptions)

// WithLevel overrides the level implied by the environment. Unknown or
// empty levels are ignored.
func WithLevel(level string) Option {
	return func(o *setupOptions) {
		o.level = level
	}
}

// Setup initializes the default logger for environment. Anything other than
// ProductionEnvironment is treated as development.
func Setup(environment string, opts ...Option) {
	var o setupOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	if o.level != "" {
		if lvl, err := zap.ParseAtomicLevel(o.level); err == nil {
			cfg.Level = lvl
		}
	}
	cfg.InitialFields = map[string]any{"service": ServiceName}

	l, err := cfg.Build()
	if err != nil {
		return
	}
	defaultLogger = l
}

// key is the context key of the request logger.
type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a copy of ctx whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the logger of ctx writes debug entries.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Sync flushes the default logger. It is called once on shutdown.
func Sync() {
	_ = defaultLogger.Sync()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
