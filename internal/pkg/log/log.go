// Package log provides the logger for the library, backed by the zap package.
package log

import (
	"context"

	"go.uber.org/zap/zapcore"
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger interface {
	Debug(ctx context.Context, message string)
	Info(ctx context.Context, message string)
	Warn(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// DebugLogger returns logs as string in tests.
type DebugLogger interface {
	Logger
	Truncate()
	AllMessages() string
}
