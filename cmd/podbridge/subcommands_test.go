package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfavecli "github.com/urfave/cli/v2"

	"github.com/chmouel/podbridge/internal/completion"
)

func appCommands() []*urfavecli.Command {
	return []*urfavecli.Command{
		doctorCommand(),
		setupCommand(),
		syncCommand(),
		checkCommand(),
		watchCommand(),
		completionCommand(),
	}
}

// The completion metadata is generated-from, not generated: keep it in step
// with the real CLI definitions.
func TestCompletionMetadataMatchesCommands(t *testing.T) {
	meta := map[string]bool{}
	for _, cmd := range completion.GetCommands() {
		meta[cmd.Name] = true
	}
	for _, cmd := range appCommands() {
		assert.True(t, meta[cmd.Name], "command %q missing from completion metadata", cmd.Name)
	}
	assert.Len(t, completion.GetCommands(), len(appCommands()))
}

func TestCompletionMetadataMatchesGlobalFlags(t *testing.T) {
	meta := map[string]bool{}
	for _, flag := range completion.GetFlags() {
		meta[flag.Name] = true
	}
	for _, flag := range globalFlags() {
		name := flag.Names()[0]
		assert.True(t, meta[name], "flag %q missing from completion metadata", name)
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	app := &urfavecli.App{Commands: []*urfavecli.Command{completionCommand()}}
	err := app.Run([]string{"podbridge", "completion", "powershell"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell")
}

func TestCompletionCommandRequiresShell(t *testing.T) {
	app := &urfavecli.App{Commands: []*urfavecli.Command{completionCommand()}}
	err := app.Run([]string{"podbridge", "completion"})
	require.Error(t, err)
}
