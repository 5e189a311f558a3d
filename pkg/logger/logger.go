// Package logger builds the zap logger shared by every component.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string `json:"level" yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `json:"format" yaml:"format" envconfig:"LOG_FORMAT"` // json or console
	File   string `json:"file,omitempty" yaml:"file,omitempty" envconfig:"LOG_FILE"`
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a logger writing to stderr and, when cfg.File is set, to a
// reopenable file. The returned closer releases the file.
func New(cfg Config) (*zap.Logger, io.Closer, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	var (
		sink   zapcore.WriteSyncer = zapcore.Lock(consoleSyncer{os.Stderr})
		closer io.Closer           = nopCloser{}
	)

	if cfg.File != "" {
		ws, err := NewReopenableWriteSyncer(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cfg.File, err)
		}

		sink = zapcore.NewMultiWriteSyncer(ws, sink)
		closer = ws
	}

	core := zapcore.NewCore(enc, sink, ParseLevel(cfg.Level))

	return zap.New(core, zap.AddCaller()), closer, nil
}

// consoleSyncer drops the errors fsync reports for pipes and terminals.
type consoleSyncer struct {
	zapcore.WriteSyncer
}

func (c consoleSyncer) Sync() error {
	err := c.WriteSyncer.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}

	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
