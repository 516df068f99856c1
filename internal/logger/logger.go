package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerContextKey is the context key type used to carry a logger in a context.
type loggerContextKey struct{}

//nolint:gochecknoglobals // Global logger state is intentional: it is configured once at startup.
var (
	// globalLevel is the dynamic level shared by the default logger.
	globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// globalLogger is the process-wide logger used when the context carries none.
	globalLogger = New(globalLevel)
)

// New creates a new zap logger writing to stderr with the given level.
// A nil level falls back to the shared dynamic level.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.Logger {
	if level == nil {
		level = globalLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, options...)
}

// ParseLogLevel parses a textual log level into a zapcore.Level.
// The second return value reports whether the input was recognized.
// Unrecognized input yields InfoLevel.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "dpanic":
		return zapcore.DPanicLevel, true
	case "panic":
		return zapcore.PanicLevel, true
	case "fatal":
		return zapcore.FatalLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	return globalLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}

	globalLogger = logger
}

// Level returns the current level of the shared dynamic level.
func Level() zapcore.Level {
	return globalLevel.Level()
}

// SetLevel changes the shared dynamic level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)
}

// ToContext returns a copy of ctx carrying the given logger.
func ToContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext extracts the logger from the context,
// falling back to the process-wide logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}

	return globalLogger
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Sugar().Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Sugar().Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Sugar().Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Sugar().Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Sugar().Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Sugar().Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Sugar().Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Sugar().Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Sugar().Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Sugar().Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Sugar().Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Sugar().Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Sugar().Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Sugar().Fatalf(format, args...)
}

// FatalKV logs a message with key-value pairs at fatal level and exits.
func FatalKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Sugar().Fatalw(message, kvs...)
}
