package cocoapods

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	log "github.com/chmouel/podbridge/internal/log"
)

// InstallationStatus classifies the probed pod installation against the
// version thresholds.
type InstallationStatus int

// Installation tiers, from worst to best.
const (
	NotInstalled InstallationStatus = iota
	BelowMinimumVersion
	BelowRecommendedVersion
	Recommended
)

// String renders the tier for diagnostics.
func (s InstallationStatus) String() string {
	switch s {
	case NotInstalled:
		return "not installed"
	case BelowMinimumVersion:
		return "below minimum version"
	case BelowRecommendedVersion:
		return "below recommended version"
	case Recommended:
		return "recommended"
	default:
		return "unknown"
	}
}

// VersionText returns the trimmed output of pod --version, probing at most
// once per process. The second return is false when the tool is missing or
// the probe exited non-zero.
func (s *Service) VersionText(ctx context.Context) (string, bool) {
	s.versionOnce.Do(func() {
		res, err := s.runner.Run(ctx, []string{"pod", "--version"}, "", nil)
		if err != nil || !res.Ok() {
			log.Printf("pod version probe failed: err=%v", err)
			return
		}
		s.versionText = strings.TrimSpace(res.Stdout)
		s.versionOK = true
	})
	return s.versionText, s.versionOK
}

// EvaluateInstallation probes the pod version and classifies it. A missing
// tool or an unparsable version string both come back as NotInstalled.
func (s *Service) EvaluateInstallation(ctx context.Context) InstallationStatus {
	text, ok := s.VersionText(ctx)
	if !ok {
		return NotInstalled
	}

	version, err := semver.NewVersion(text)
	if err != nil {
		log.Printf("unparsable pod version %q: %v", text, err)
		return NotInstalled
	}

	if version.LessThan(semver.MustParse(MinimumVersion)) {
		return BelowMinimumVersion
	}
	if version.LessThan(semver.MustParse(RecommendedVersion)) {
		return BelowRecommendedVersion
	}
	return Recommended
}

// IsInitialized reports whether the pod repo cache exists under the home
// directory. Checked fresh on every call.
func (s *Service) IsInitialized() bool {
	info, err := os.Stat(filepath.Join(s.homeDir, ".cocoapods", "repos", "master"))
	return err == nil && info.IsDir()
}
