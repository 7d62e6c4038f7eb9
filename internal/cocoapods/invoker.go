package cocoapods

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/chmouel/podbridge/internal/log"
	"github.com/chmouel/podbridge/internal/project"
)

// Outcome reports what Process did. When Process returns a non-nil error the
// outcome is Failed and the caller should terminate with a non-zero status.
type Outcome int

// Process outcomes.
const (
	Failed Outcome = iota
	Ran
	SkippedNotInstalled
	SkippedNotInitialized
	SkippedUpToDate
)

// String renders the outcome for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Ran:
		return "ran"
	case SkippedNotInstalled:
		return "skipped: not installed"
	case SkippedNotInitialized:
		return "skipped: not initialized"
	case SkippedUpToDate:
		return "skipped: up to date"
	default:
		return "unknown"
	}
}

// DidRun reports whether pod install actually executed successfully.
func (o Outcome) DidRun() bool { return o == Ran }

// Environment overrides for pod install.
const (
	frameworkDirEnv = "FLUTTER_FRAMEWORK_DIR"
	disableStatsEnv = "COCOAPODS_DISABLE_STATS"
)

// outOfDateReposMarker appears in pod output when the local specs repository
// lags behind the remote.
const outOfDateReposMarker = "out-of-date source repos"

const installGuideURL = "https://guides.cocoapods.org/using/getting-started.html#installation"

// Process runs pod install for the platform sub-project when the installation
// is usable and the lock state is stale. It requires the Podfile to exist;
// EnsurePodfile must have run first.
func (s *Service) Process(ctx context.Context, p project.Platform, engineDir string, dependenciesChanged bool) (Outcome, error) {
	if _, err := os.Stat(p.Podfile()); err != nil {
		return Failed, fmt.Errorf("%s is missing; run setup first", p.Podfile())
	}

	switch tier := s.EvaluateInstallation(ctx); tier {
	case NotInstalled:
		s.status.Warnf("CocoaPods not installed. Skipping pod install.\nTo install CocoaPods, see %s", installGuideURL)
		return SkippedNotInstalled, nil
	case BelowMinimumVersion:
		text, _ := s.VersionText(ctx)
		s.status.Warnf("CocoaPods %s or greater is required (found %s). Skipping pod install.\nTo upgrade CocoaPods, see %s", MinimumVersion, text, installGuideURL)
		return SkippedNotInstalled, nil
	case BelowRecommendedVersion:
		text, _ := s.VersionText(ctx)
		s.status.Warnf("CocoaPods %s or greater is recommended (found %s). Pods handling may fail in unexpected ways.", RecommendedVersion, text)
	}

	if !s.IsInitialized() {
		s.status.Warnf("CocoaPods installed but not initialized. Skipping pod install.\nTo initialize CocoaPods, run:\n    pod setup")
		return SkippedNotInitialized, nil
	}

	if !ShouldSynchronize(p, dependenciesChanged) {
		log.Printf("pods up to date, skipping pod install")
		return SkippedUpToDate, nil
	}

	stop := s.status.Progress("Running pod install")
	env := map[string]string{
		// Kept for Podfiles written against older engine layouts.
		frameworkDirEnv: engineDir,
	}
	if s.disableStats {
		env[disableStatsEnv] = "true"
	}
	res, err := s.runner.Run(ctx, []string{"pod", "install", "--verbose"}, p.Root, env)
	stop()
	if err != nil {
		return Failed, fmt.Errorf("starting pod install: %w", err)
	}

	if s.verbose || !res.Ok() {
		s.status.EchoIndented("pod install output", res.Stdout)
		s.status.EchoIndented("pod install errors", res.Stderr)
	}

	if !res.Ok() {
		// Without this the next run could see matching locks and skip the
		// install that just failed.
		s.InvalidateCache(p)
		if strings.Contains(res.Stdout, outOfDateReposMarker) {
			s.status.Errorf("Your local CocoaPods specs repository is out of date. To update it, run:\n    pod repo update")
		}
		return Failed, fmt.Errorf("pod install failed (exit %d)", res.ExitCode)
	}

	return Ran, nil
}
