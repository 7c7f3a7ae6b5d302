// Package logutil builds the zap loggers used by the command-line tools.
package logutil

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kalaninja/algosharp/algo"
)

// LogConfig configures a logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format"`
	// Filename is the log file. Empty means stderr.
	Filename string `mapstructure:"file"`
	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize int `mapstructure:"max-size"`
	// MaxDays is the number of days rotated files are kept. 0 keeps them.
	MaxDays int `mapstructure:"max-days"`
	// MaxBackups is the number of rotated files kept. 0 keeps them all.
	MaxBackups int `mapstructure:"max-backups"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:   zapcore.InfoLevel.String(),
		Format:  "console",
		MaxSize: 512,
	}
}

// New builds a logger from cfg.
func New(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(algo.ErrInvalidArgument, "unsupported log level: %s", cfg.Level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, errors.Wrapf(algo.ErrInvalidArgument, "unsupported log format: %s", cfg.Format)
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller()), nil
}
