// Package logging wraps a zap sugared logger with key/value helpers.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	s *zap.SugaredLogger
}

// New returns a JSON logger for the analysis service.
func New(level string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return build(cfg, level, zap.NewProduction)
}

// NewDevelopment returns a console logger for interactive tools. Output goes
// to stderr so reports on stdout stay clean.
func NewDevelopment(level string) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	return build(cfg, level, zap.NewDevelopment)
}

// ForEnv picks the console logger in development and JSON everywhere else.
func ForEnv(env, level string) *Logger {
	if env == "development" {
		return NewDevelopment(level)
	}
	return New(level)
}

func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func build(cfg zap.Config, level string, fallback func(...zap.Option) (*zap.Logger, error)) *Logger {
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	z, err := cfg.Build()
	if err != nil {
		if z, err = fallback(); err != nil {
			z = zap.NewNop()
		}
	}
	return &Logger{s: z.Sugar()}
}

// ParseLevel understands zap level names plus "warning". Anything else is
// info.
func ParseLevel(level string) zapcore.Level {
	if level == "warning" || level == "WARNING" {
		return zapcore.WarnLevel
	}
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{s: l.s.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.s.Debugw(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.s.Infow(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.s.Warnw(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.s.Errorw(msg, keyvals...) }
func (l *Logger) Fatal(msg string, keyvals ...any) { l.s.Fatalw(msg, keyvals...) }

func (l *Logger) Sync() error {
	return l.s.Sync()
}
