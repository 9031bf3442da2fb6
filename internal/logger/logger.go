package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置
type Config struct {
	Level       string
	Development bool
	LogFile     string
	MaxSize     int // MB
	MaxBackups  int
	MaxAge      int // days
	Compress    bool
	Service     string // 写入每条日志的 service 字段，留空则不写
}

// NewLogger 创建日志记录器
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if cfg.Development {
		encoderConfig := encoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	}

	writeSyncer, err := newWriteSyncer(cfg)
	if err != nil {
		return nil, err
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel), zap.Development())
	}
	if cfg.Service != "" {
		opts = append(opts, zap.Fields(zap.String("service", cfg.Service)))
	}

	return zap.New(zapcore.NewCore(encoder, writeSyncer, level), opts...), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// newWriteSyncer 配置了日志文件时同时输出到轮转文件和控制台
func newWriteSyncer(cfg Config) (zapcore.WriteSyncer, error) {
	if cfg.LogFile == "" {
		return zapcore.AddSync(os.Stdout), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, err
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 100
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(rotating),
		zapcore.AddSync(os.Stdout),
	), nil
}
