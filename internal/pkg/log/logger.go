package log

import (
	"context"

	"go.uber.org/zap"
)

// zapLogger is default implementation of the Logger interface.
// It is wrapped zap.Logger.
type zapLogger struct {
	base *zap.Logger
}

// NewLogger wraps an existing zap logger.
func NewLogger(base *zap.Logger) Logger {
	return &zapLogger{base: base}
}

// NewNopLogger drops all messages.
func NewNopLogger() Logger {
	return &zapLogger{base: zap.NewNop()}
}

func (l *zapLogger) Debug(_ context.Context, message string) {
	l.base.Debug(message)
}

func (l *zapLogger) Info(_ context.Context, message string) {
	l.base.Info(message)
}

func (l *zapLogger) Warn(_ context.Context, message string) {
	l.base.Warn(message)
}

func (l *zapLogger) Error(_ context.Context, message string) {
	l.base.Error(message)
}
