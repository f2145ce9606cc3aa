// Package logging builds the application logger: a logr.Logger backed by zap,
// writing JSON lines to a size-rotated file. The terminal belongs to the UI,
// so without a file the logger discards everything.
package logging

import (
	"fmt"
	"runtime/debug"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Johannes-Berggren/repodash/internal/config"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	GoVersionKey = "go_version"
)

// Logger couples the logr front end with the zap logger that owns the sink.
type Logger struct {
	logr.Logger
	zap  *zap.Logger
	sink *lumberjack.Logger
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return &Logger{Logger: logr.Discard()}
}

// New creates the logger described by cfg.
func New(cfg config.LoggingConfig) (*Logger, error) {
	if cfg.File == "" {
		return Discard(), nil
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(sink),
		zap.NewAtomicLevelAt(level),
	).With([]zapcore.Field{zap.String(GoVersionKey, goVersion)})

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return &Logger{
		Logger: zapr.NewLogger(zl),
		zap:    zl,
		sink:   sink,
	}, nil
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	if l.zap == nil {
		return nil
	}
	// Sync on a plain file only fails if the file is gone; the close error is what matters.
	_ = l.zap.Sync()
	return l.sink.Close()
}

// parseLevel maps a config level to zap. logr's V(1) is zap's debug level.
func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}
