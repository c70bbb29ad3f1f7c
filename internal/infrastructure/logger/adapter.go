package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"watcher/internal/application/port/output"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ output.LoggerPort = (*LoggerAdapter)(nil)

type Config struct {
	Level      string
	File       string
	Console    bool
	MaxSizeMB  int
	MaxBackups int
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		File:       filepath.Join("log", "watcher.log"),
		Console:    true,
		MaxSizeMB:  20,
		MaxBackups: 5,
	}
}

// LoggerAdapter implements output.LoggerPort on a sugared zap logger. Console output is
// human readable; the file sink is always JSON.
type LoggerAdapter struct {
	sugar *zap.SugaredLogger
}

func NewLoggerAdapter(cfg Config) (*LoggerAdapter, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level,
		))
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
			}),
			level,
		))
	}
	if len(cores) == 0 {
		return NewNop(), nil
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("watcher")
	return &LoggerAdapter{sugar: base.Sugar()}, nil
}

// NewFromZap wraps an existing zap logger; tests use it with zaptest/observer.
func NewFromZap(base *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{sugar: base.Sugar()}
}

func NewNop() *LoggerAdapter {
	return NewFromZap(zap.NewNop())
}

func (l *LoggerAdapter) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *LoggerAdapter) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *LoggerAdapter) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *LoggerAdapter) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *LoggerAdapter) WithField(key string, value any) output.LoggerPort {
	return &LoggerAdapter{sugar: l.sugar.With(key, value)}
}

func (l *LoggerAdapter) WithFields(fields map[string]any) output.LoggerPort {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &LoggerAdapter{sugar: l.sugar.With(args...)}
}

func (l *LoggerAdapter) Close() error {
	// Sync on a console sink returns EINVAL on some platforms; nothing to report.
	_ = l.sugar.Sync()
	return nil
}
