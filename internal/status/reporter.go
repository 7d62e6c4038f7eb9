// Package status renders user-facing progress and diagnostics for podbridge.
package status

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"golang.org/x/term"
)

// Reporter receives user-facing output from the orchestration layer.
// Warnings and errors are advisory; nothing here decides control flow.
type Reporter interface {
	Printf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// EchoIndented prints a captured subprocess transcript under a label,
	// indented so it reads as quoted output rather than our own.
	EchoIndented(label, text string)
	// Progress shows an activity indicator until the returned stop
	// function is called.
	Progress(message string) func()
}

const echoIndent = 4

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Terminal writes styled output to stdout/stderr. The spinner is only
// animated when stderr is a TTY; otherwise a single line is printed.
type Terminal struct {
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
	animate bool
}

// NewTerminal constructs a Terminal reporter bound to the process streams.
func NewTerminal() *Terminal {
	return &Terminal{
		out:     os.Stdout,
		errOut:  os.Stderr,
		animate: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Printf writes an informational line to stdout.
func (t *Terminal) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Warnf writes a highlighted warning to stderr.
func (t *Terminal) Warnf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.errOut, warnStyle.Render(fmt.Sprintf("Warning: "+format, args...)))
}

// Errorf writes a highlighted error to stderr.
func (t *Terminal) Errorf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.errOut, errorStyle.Render(fmt.Sprintf("Error: "+format, args...)))
}

// EchoIndented prints a labelled, indented block of subprocess output.
// Empty transcripts are skipped entirely.
func (t *Terminal) EchoIndented(label, text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, labelStyle.Render(label+":"))
	fmt.Fprintln(t.out, indent.String(text, echoIndent))
}

// Progress starts a spinner on stderr and returns its stop function.
func (t *Terminal) Progress(message string) func() {
	if !t.animate {
		t.mu.Lock()
		fmt.Fprintf(t.errOut, "%s...\n", message)
		t.mu.Unlock()
		return func() {}
	}

	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-done:
				t.mu.Lock()
				// Clear the spinner line before handing the terminal back.
				fmt.Fprintf(t.errOut, "\r%s\r", strings.Repeat(" ", len(message)+4))
				t.mu.Unlock()
				return
			case <-ticker.C:
				t.mu.Lock()
				fmt.Fprintf(t.errOut, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], message)
				t.mu.Unlock()
				frame++
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

// Recorder captures reporter calls for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Infos     []string
	Warnings  []string
	Errors    []string
	Echoed    map[string]string
	Progressn int
}

// NewRecorder constructs an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Echoed: map[string]string{}}
}

// Printf records an informational message.
func (r *Recorder) Printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

// Warnf records a warning.
func (r *Recorder) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Errorf records an error message.
func (r *Recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// EchoIndented records an echoed transcript keyed by label.
func (r *Recorder) EchoIndented(label, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Echoed[label] = text
}

// Progress counts indicator activations.
func (r *Recorder) Progress(string) func() {
	r.mu.Lock()
	r.Progressn++
	r.mu.Unlock()
	return func() {}
}
