package cocoapods

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chmouel/podbridge/internal/run"
	"github.com/chmouel/podbridge/internal/status"
)

// fakeRunner replays canned results keyed by the joined command line and
// records every invocation.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]run.Result
	errs    map[string]error
	calls   []string
	cwds    []string
	envs    []map[string]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		results: map[string]run.Result{},
		errs:    map[string]error{},
	}
}

func (f *fakeRunner) Run(_ context.Context, args []string, cwd string, env map[string]string) (run.Result, error) {
	key := strings.Join(args, " ")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.cwds = append(f.cwds, cwd)
	f.envs = append(f.envs, env)
	f.mu.Unlock()

	if err, ok := f.errs[key]; ok {
		return run.Result{}, err
	}
	return f.results[key], nil
}

func (f *fakeRunner) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.calls {
		if call == key {
			n++
		}
	}
	return n
}

// newTestService wires a Service with a fake runner, a recording reporter,
// and an initialized pod repo cache under a temp home.
func newTestService(t *testing.T, runner *fakeRunner, opts ...Option) (*Service, *status.Recorder) {
	t.Helper()
	recorder := status.NewRecorder()
	home := initializedHome(t)
	opts = append([]Option{WithHomeDir(home)}, opts...)
	return NewService(runner, recorder, opts...), recorder
}

func initializedHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, mkdirAll(home, ".cocoapods", "repos", "master"))
	return home
}

func mkdirAll(parts ...string) error {
	return os.MkdirAll(filepath.Join(parts...), 0o755)
}
