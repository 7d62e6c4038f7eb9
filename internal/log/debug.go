// Package log provides the trace log used to debug subprocess orchestration.
// Messages are buffered in memory until a log file is configured, then the
// buffer is flushed and subsequent writes go straight to the file.
package log

import (
	"log"
	"os"
	"sync"
)

// traceWriter implements io.Writer so it can back a standard log.Logger.
type traceWriter struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	writer    = &traceWriter{}
	stdLogger = log.New(writer, "", log.LstdFlags|log.Lmicroseconds)
)

// Write appends to the pending buffer until a file is configured.
func (w *traceWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}

	if w.file != nil {
		n, err := w.file.Write(p)
		// Sync so messages survive a crash mid-run; sync errors are not
		// worth surfacing for a trace log.
		_ = w.file.Sync()
		return n, err
	}

	// p may be reused by the caller once Write returns.
	b := make([]byte, len(p))
	copy(b, p)
	w.pending = append(w.pending, b...)
	return len(p), nil
}

// SetFile directs trace output to the given path, creating the file when
// needed and flushing anything buffered so far. An empty path discards all
// buffered and future messages.
func SetFile(path string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file != nil {
		_ = writer.file.Close()
		writer.file = nil
	}

	if path == "" {
		writer.discard = true
		writer.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		writer.discard = true
		writer.pending = nil
		return err
	}

	writer.file = f
	writer.discard = false

	if len(writer.pending) > 0 {
		_, _ = f.Write(writer.pending)
		_ = f.Sync()
		writer.pending = nil
	}

	return nil
}

// Printf writes a formatted trace message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a trace message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the trace log file if one is open.
func Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file == nil {
		return nil
	}

	err := writer.file.Close()
	writer.file = nil
	return err
}
