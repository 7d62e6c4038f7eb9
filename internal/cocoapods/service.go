// Package cocoapods orchestrates the CocoaPods tool for an iOS sub-project:
// probing the installation, deciding whether pod install needs to run,
// scaffolding the Podfile, and invoking the tool itself.
package cocoapods

import (
	"os"
	"sync"

	"github.com/chmouel/podbridge/internal/run"
	"github.com/chmouel/podbridge/internal/status"
)

// Version thresholds the probed installation is classified against.
const (
	MinimumVersion     = "1.10.0"
	RecommendedVersion = "1.11.0"
)

// Service coordinates pod invocations. Collaborators are injected so tests
// can substitute the subprocess runner and the reporter.
type Service struct {
	runner       run.CommandRunner
	status       status.Reporter
	verbose      bool
	disableStats bool
	homeDir      string

	// Single-flight cell for the version probe: the first caller runs the
	// subprocess, everyone after reads the cached result.
	versionOnce sync.Once
	versionText string
	versionOK   bool
}

// Option configures a Service.
type Option func(*Service)

// WithVerbose makes the invoker echo subprocess transcripts even on success.
func WithVerbose(verbose bool) Option {
	return func(s *Service) { s.verbose = verbose }
}

// WithStatsDisabled controls whether pod install runs with its telemetry
// switched off. On by default.
func WithStatsDisabled(disabled bool) Option {
	return func(s *Service) { s.disableStats = disabled }
}

// WithHomeDir overrides the home directory used to locate the pod repo
// cache. Intended for tests.
func WithHomeDir(dir string) Option {
	return func(s *Service) { s.homeDir = dir }
}

// NewService constructs a Service around the given runner and reporter.
func NewService(runner run.CommandRunner, reporter status.Reporter, opts ...Option) *Service {
	s := &Service{
		runner:       runner,
		status:       reporter,
		disableStats: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.homeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.homeDir = home
		}
	}
	return s
}
