// Package run executes the external tools podbridge shells out to.
package run

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/chmouel/podbridge/internal/log"
)

// LookupPath is used to find executables in PATH. It's exposed as a package variable
// so tests can mock it and avoid depending on system binaries being installed.
var LookupPath = exec.LookPath

// Result holds the outcome of a finished subprocess.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Ok reports whether the subprocess exited with status zero.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// CommandRunner starts a subprocess and waits for it to finish.
// A non-nil error means the process could not be launched at all;
// a non-zero exit comes back inside the Result with a nil error.
type CommandRunner interface {
	Run(ctx context.Context, args []string, cwd string, env map[string]string) (Result, error)
}

// Runner is the CommandRunner backed by os/exec.
type Runner struct{}

// NewRunner constructs the default Runner.
func NewRunner() *Runner {
	return &Runner{}
}

func prepareAllowedCommand(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "pod":
		// #nosec G204 -- arguments for pod come from internal logic and are not shell interpolated
		return exec.CommandContext(ctx, "pod", args[1:]...), nil
	case "xcodebuild":
		// #nosec G204 -- arguments for xcodebuild are supplied by vetted code paths
		return exec.CommandContext(ctx, "xcodebuild", args[1:]...), nil
	default:
		return nil, fmt.Errorf("unsupported command %q", args[0])
	}
}

func formatEnv(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	formatted := make([]string, 0, len(env))
	for k, v := range env {
		formatted = append(formatted, fmt.Sprintf("%s=%s", k, v))
	}
	return formatted
}

// Run executes an allow-listed command and captures its output streams.
func (r *Runner) Run(ctx context.Context, args []string, cwd string, env map[string]string) (Result, error) {
	command := strings.Join(args, " ")
	log.Printf("run: %s (cwd=%s)", command, cwd)

	cmd, err := prepareAllowedCommand(ctx, args)
	if err != nil {
		return Result{}, err
	}
	if cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Env = append(os.Environ(), formatEnv(env)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitError, ok := err.(*exec.ExitError)
		if !ok {
			// Launch failure: binary missing, permission denied, context cancelled.
			log.Printf("error: %s: %v", command, err)
			return Result{}, err
		}
		res := Result{
			ExitCode: exitError.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
		log.Printf("exit %d: %s", res.ExitCode, command)
		return res, nil
	}

	log.Printf("ok: %s", command)
	return Result{ExitCode: 0, Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
