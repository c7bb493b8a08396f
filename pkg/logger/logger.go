// Package logger provides the diagnostic stream used while analyzing usage.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message followed by a newline.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes to an io.Writer.
type writerLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new logger writing to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a new logger writing to out.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

// Logf writes a formatted message to the underlying writer with thread safety.
// Write errors are ignored: diagnostics never fail an analysis.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}
