package log

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

// field constructors, re-exported so callers don't need to import zap
var (
	Any        = zap.Any
	Bool       = zap.Bool
	Duration   = zap.Duration
	ErrorField = zap.Error
	Float32    = zap.Float32
	Float64    = zap.Float64
	Int        = zap.Int
	Int32      = zap.Int32
	Int64      = zap.Int64
	String     = zap.String
	Strings    = zap.Strings
	Time       = zap.Time
	Uint       = zap.Uint
	Uint32     = zap.Uint32
	Uint64     = zap.Uint64
)

var (
	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
)

type Logger struct {
	l     *zap.Logger
	level zap.AtomicLevel
}

type ctxKey struct{}

var std = New(os.Stderr, InfoLevel, AddCallerSkip(1))

// New creates a logger writing json records to writer.
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return newLogger(zapcore.NewJSONEncoder(cfg), writer, level, opts...)
}

// DevLogger creates a logger writing human readable records to writer.
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return newLogger(zapcore.NewConsoleEncoder(cfg), writer, level, opts...)
}

//nolint:whitespace // can't make both editor and linter happy
func newLogger(
	enc zapcore.Encoder, writer io.Writer, level Level, opts ...Option,
) *Logger {
	if writer == nil {
		writer = os.Stderr
	}
	atom := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(enc, zapcore.AddSync(writer), atom)
	return &Logger{l: zap.New(core, opts...), level: atom}
}

// WithFilter installs a zapfilter rule set (e.g. "*:schedule* warn+:*")
// on top of the level based filtering.
func WithFilter(rules string) (Option, error) {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

func Default() *Logger {
	return std
}

// ResetDefault replaces the logger used by the package level functions.
// Callers should build l with AddCallerSkip(1) to keep caller info correct.
func ResetDefault(l *Logger) {
	std = l
}

func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetFromContext returns the logger stored in ctx or the default logger.
func GetFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return std
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) WithOptions(opts ...Option) *Logger {
	return &Logger{l: l.l.WithOptions(opts...), level: l.level}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level.Level()
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

func (l *Logger) Enabled(level Level) bool {
	return l.l.Core().Enabled(level)
}

func (l *Logger) Log(level Level, msg string, fields ...Field) {
	if ce := l.l.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...Field) {
	l.l.Fatal(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func Debug(msg string, fields ...Field) {
	std.l.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	std.l.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	std.l.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	std.l.Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	std.l.Fatal(msg, fields...)
}

func Fatalf(template string, args ...any) {
	std.l.Sugar().Fatalf(template, args...)
}

func Sync() error {
	return std.Sync()
}
