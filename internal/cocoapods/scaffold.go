package cocoapods

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/chmouel/podbridge/internal/log"
	"github.com/chmouel/podbridge/internal/project"
)

// EnsurePodfile makes sure the platform sub-project carries a Podfile and
// that the per-mode xcconfig files include the pod build settings. A host
// without a usable Xcode toolchain is silently skipped. Safe to call
// repeatedly: an existing Podfile is never overwritten and the include
// directive is only added once.
func (s *Service) EnsurePodfile(ctx context.Context, p project.Platform) error {
	res, err := s.runner.Run(ctx, []string{"xcodebuild", "-version"}, "", nil)
	if err != nil || !res.Ok() {
		log.Printf("xcodebuild unavailable, skipping Podfile setup")
		return nil
	}

	if _, err := os.Stat(p.Podfile()); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", p.Podfile(), err)
		}
		dialect := s.detectDialect(ctx, p)
		log.Printf("scaffolding Podfile (dialect=%s)", dialect)
		if err := p.WritePodfile(dialect); err != nil {
			return err
		}
	}

	for _, mode := range project.Modes {
		if err := p.EnsurePodConfigInclude(mode); err != nil {
			return err
		}
	}
	return nil
}

// detectDialect inspects the Xcode project's build settings: a SWIFT_VERSION
// entry marks a Swift project, anything else falls back to Objective-C.
func (s *Service) detectDialect(ctx context.Context, p project.Platform) project.Dialect {
	res, err := s.runner.Run(ctx, []string{"xcodebuild", "-project", "Runner.xcodeproj", "-showBuildSettings"}, p.Root, nil)
	if err != nil || !res.Ok() {
		return project.DialectObjectiveC
	}
	if strings.Contains(res.Stdout, "SWIFT_VERSION") {
		return project.DialectSwift
	}
	return project.DialectObjectiveC
}

// InvalidateCache deletes the pod tool's manifest lock so the next staleness
// check cannot report up-to-date. Called after a failed install.
func (s *Service) InvalidateCache(p project.Platform) {
	if err := os.Remove(p.ManifestLock()); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove %s: %v", p.ManifestLock(), err)
	}
}
