package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger behind level-named printf methods.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a console logger; errors go to stderr, the rest to stdout.
func NewLogger() *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l < zapcore.ErrorLevel
		})),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.ErrorLevel),
	)

	return &Logger{sugar: zap.New(core).Sugar()}
}

func (l *Logger) Info(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }
func (l *Logger) Debug(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
