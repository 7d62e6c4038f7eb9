package status

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedTerminal() (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Terminal{out: &out, errOut: &errOut}, &out, &errOut
}

func TestTerminalPrintf(t *testing.T) {
	term, out, _ := newBufferedTerminal()
	term.Printf("pod install %s", "ran")
	assert.Equal(t, "pod install ran\n", out.String())
}

func TestTerminalWarnfGoesToStderr(t *testing.T) {
	term, out, errOut := newBufferedTerminal()
	term.Warnf("CocoaPods not installed")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "CocoaPods not installed")
	assert.Contains(t, errOut.String(), "Warning:")
}

func TestTerminalEchoIndented(t *testing.T) {
	term, out, _ := newBufferedTerminal()
	term.EchoIndented("pod install output", "line one\nline two\n")

	rendered := out.String()
	assert.Contains(t, rendered, "pod install output:")
	assert.Contains(t, rendered, "    line one")
	assert.Contains(t, rendered, "    line two")
	// The trailing newline of the transcript must not produce an empty
	// indented line.
	assert.False(t, strings.HasSuffix(rendered, "    \n"))
}

func TestTerminalEchoIndentedSkipsEmpty(t *testing.T) {
	term, out, _ := newBufferedTerminal()
	term.EchoIndented("pod install errors", "")
	term.EchoIndented("pod install errors", "\n\n")
	assert.Empty(t, out.String())
}

func TestTerminalProgressWithoutTTY(t *testing.T) {
	term, _, errOut := newBufferedTerminal()
	stop := term.Progress("Running pod install")
	stop()
	stop() // stop must be idempotent
	assert.Equal(t, "Running pod install...\n", errOut.String())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Printf("a %d", 1)
	rec.Warnf("b")
	rec.Errorf("c")
	rec.EchoIndented("out", "text")
	rec.Progress("spin")()

	assert.Equal(t, []string{"a 1"}, rec.Infos)
	assert.Equal(t, []string{"b"}, rec.Warnings)
	assert.Equal(t, []string{"c"}, rec.Errors)
	assert.Equal(t, "text", rec.Echoed["out"])
	assert.Equal(t, 1, rec.Progressn)
}
