package cocoapods

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/podbridge/internal/project"
)

// newPlatform lays out a platform dir with a Podfile and optional lock files.
func newPlatform(t *testing.T, lock, manifest string) project.Platform {
	t.Helper()
	p := project.Platform{Root: t.TempDir()}
	require.NoError(t, os.WriteFile(p.Podfile(), []byte("target 'Runner'\n"), 0o644))
	if lock != "" {
		require.NoError(t, os.WriteFile(p.PodfileLock(), []byte(lock), 0o644))
	}
	if manifest != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(p.ManifestLock()), 0o755))
		require.NoError(t, os.WriteFile(p.ManifestLock(), []byte(manifest), 0o644))
	}
	return p
}

// freshenLock pushes the lock mtime past the Podfile's.
func freshenLock(t *testing.T, p project.Platform) {
	t.Helper()
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(p.PodfileLock(), later, later))
}

func TestShouldSynchronizeChangedHintWins(t *testing.T) {
	// Even a fully in-sync layout must re-run on the hint.
	p := newPlatform(t, "PODS: a\n", "PODS: a\n")
	freshenLock(t, p)

	assert.True(t, ShouldSynchronize(p, true))

	// The hint needs no file state at all.
	empty := project.Platform{Root: t.TempDir()}
	assert.True(t, ShouldSynchronize(empty, true))
}

func TestShouldSynchronizeMissingLock(t *testing.T) {
	p := newPlatform(t, "", "PODS: a\n")
	assert.True(t, ShouldSynchronize(p, false))
}

func TestShouldSynchronizeMissingManifest(t *testing.T) {
	p := newPlatform(t, "PODS: a\n", "")
	assert.True(t, ShouldSynchronize(p, false))
}

func TestShouldSynchronizeStaleLock(t *testing.T) {
	p := newPlatform(t, "PODS: a\n", "PODS: a\n")
	earlier := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(p.PodfileLock(), earlier, earlier))

	assert.True(t, ShouldSynchronize(p, false))
}

func TestShouldSynchronizeContentDrift(t *testing.T) {
	p := newPlatform(t, "PODS: a\n", "PODS: b\n")
	freshenLock(t, p)

	assert.True(t, ShouldSynchronize(p, false))
}

func TestShouldSynchronizeUpToDate(t *testing.T) {
	p := newPlatform(t, "PODS: a\n", "PODS: a\n")
	freshenLock(t, p)

	assert.False(t, ShouldSynchronize(p, false))
}
