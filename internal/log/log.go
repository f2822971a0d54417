// Package log provides the structured logger used by the proxy and CLI,
// adapted from the zap+lumberjack pairing already pulled in (indirectly,
// via gnet) by the teacher's go.mod, following the constructor shape of
// _examples/packetd-packetd/logger/logger.go: a rotating file sink when a
// filename is configured, stdout otherwise.
package log

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New. The zero value logs to stdout at info level.
type Options struct {
	Stdout     bool
	Level      string // "debug", "info", "warn", "error"
	Filename   string
	MaxSize    int // MB
	MaxAge     int // days
	MaxBackups int
}

func levelFromString(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a *zap.Logger per Options. When opt.Filename is empty it
// writes to stdout, matching the teacher's example binaries' plain
// stdout logging via the standard "log" package, generalized to
// structured fields.
func New(opt Options) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var w zapcore.WriteSyncer
	if opt.Stdout || opt.Filename == "" {
		w = zapcore.AddSync(os.Stdout)
	} else {
		if err := os.MkdirAll(filepath.Dir(opt.Filename), 0o755); err != nil {
			return nil, err
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    opt.MaxSize,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge,
			LocalTime:  true,
		})
	}

	core := zapcore.NewCore(encoder, w, levelFromString(opt.Level))
	return zap.New(core, zap.AddCaller()), nil
}

// Nop returns a logger that discards everything, for tests.
func Nop() *zap.Logger {
	return zap.NewNop()
}
