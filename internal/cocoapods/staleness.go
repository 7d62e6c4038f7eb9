package cocoapods

import (
	"bytes"
	"os"

	log "github.com/chmouel/podbridge/internal/log"
	"github.com/chmouel/podbridge/internal/project"
)

// ShouldSynchronize decides whether pod install needs to run. Any single red
// flag forces a rerun: a changed-dependencies hint, a missing lock or
// manifest, a lock older than the Podfile, or lock/manifest content drift.
// Pure predicate; touches nothing on disk.
func ShouldSynchronize(p project.Platform, dependenciesChanged bool) bool {
	if dependenciesChanged {
		return true
	}

	lockInfo, err := os.Stat(p.PodfileLock())
	if err != nil {
		log.Printf("stale: %s missing", p.PodfileLock())
		return true
	}

	manifest, err := os.ReadFile(p.ManifestLock()) //nolint:gosec
	if err != nil {
		log.Printf("stale: %s missing", p.ManifestLock())
		return true
	}

	if podfileInfo, err := os.Stat(p.Podfile()); err == nil {
		if lockInfo.ModTime().Before(podfileInfo.ModTime()) {
			log.Printf("stale: %s newer than %s", p.Podfile(), p.PodfileLock())
			return true
		}
	}

	lock, err := os.ReadFile(p.PodfileLock()) //nolint:gosec
	if err != nil {
		return true
	}

	// The pod tool keeps these byte-identical after a successful install;
	// any difference means the Pods directory has drifted.
	if !bytes.Equal(lock, manifest) {
		log.Printf("stale: %s and %s differ", p.PodfileLock(), p.ManifestLock())
		return true
	}

	return false
}
