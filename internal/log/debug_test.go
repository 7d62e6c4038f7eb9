package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetWriter(t *testing.T) func() {
	t.Helper()

	writer.mu.Lock()
	prevFile := writer.file
	prevPending := append([]byte(nil), writer.pending...)
	prevDiscard := writer.discard
	writer.file = nil
	writer.pending = nil
	writer.discard = false
	writer.mu.Unlock()

	return func() {
		writer.mu.Lock()
		if writer.file != nil {
			_ = writer.file.Close()
		}
		writer.file = prevFile
		writer.pending = prevPending
		writer.discard = prevDiscard
		writer.mu.Unlock()
	}
}

func TestBufferedMessagesFlushToFile(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	Printf("run: pod --version (cwd=%s)", "/tmp/app/ios")

	logPath := filepath.Join(t.TempDir(), "trace.log")
	if err := SetFile(logPath); err != nil {
		t.Fatalf("SetFile: %v", err)
	}

	Printf("ok: pod --version")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "run: pod --version (cwd=/tmp/app/ios)") {
		t.Fatalf("buffered message missing from log: %q", content)
	}
	if !strings.Contains(string(content), "ok: pod --version") {
		t.Fatalf("post-SetFile message missing from log: %q", content)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	Println("will be dropped")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile: %v", err)
	}

	writer.mu.Lock()
	discard := writer.discard
	pending := len(writer.pending)
	writer.mu.Unlock()

	if !discard {
		t.Fatal("expected discard after empty SetFile")
	}
	if pending != 0 {
		t.Fatalf("expected cleared buffer, have %d bytes", pending)
	}
}

func TestSetFileFailureDiscards(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	unwritableDir := t.TempDir()
	if err := os.Chmod(unwritableDir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("set directory permissions: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})

	if err := SetFile(filepath.Join(unwritableDir, "trace.log")); err == nil {
		t.Fatal("expected SetFile to fail")
	}

	writer.mu.Lock()
	discard := writer.discard
	writer.mu.Unlock()
	if !discard {
		t.Fatal("expected discard after SetFile failure")
	}
}
