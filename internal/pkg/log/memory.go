package log

import (
	"bytes"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// debugLogger logs to an in-memory buffer, messages can be asserted in tests.
type debugLogger struct {
	*zapLogger
	writer *safeBuffer
}

// safeBuffer guards the buffer, the logger may be used from multiple goroutines.
type safeBuffer struct {
	lock   sync.Mutex
	buffer bytes.Buffer
}

func (w *safeBuffer) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buffer.Write(p)
}

func (w *safeBuffer) String() string {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.buffer.String()
}

func (w *safeBuffer) Reset() {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.buffer.Reset()
}

func NewDebugLogger() DebugLogger {
	writer := &safeBuffer{}

	encoderConfig := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "message",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(writer), DebugLevel)

	return &debugLogger{
		zapLogger: &zapLogger{base: zap.New(core)},
		writer:    writer,
	}
}

func (l *debugLogger) Truncate() {
	l.writer.Reset()
}

func (l *debugLogger) AllMessages() string {
	return l.writer.String()
}
