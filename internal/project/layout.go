// Package project models the layout of the iOS sub-project podbridge manages.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Build mode names used by the generated Xcode configuration.
const (
	ModeDebug   = "Debug"
	ModeRelease = "Release"
)

// Modes lists the build modes whose xcconfig files reference pod output.
var Modes = []string{ModeDebug, ModeRelease}

// Platform locates the well-known files of an iOS sub-project.
// Root is the platform directory itself (usually <app>/ios).
type Platform struct {
	Root string
}

// ForAppRoot returns the Platform nested under an application root directory.
func ForAppRoot(appRoot string) Platform {
	return Platform{Root: filepath.Join(appRoot, "ios")}
}

// Podfile returns the path of the dependency manifest.
func (p Platform) Podfile() string {
	return filepath.Join(p.Root, "Podfile")
}

// PodfileLock returns the path of the resolved-versions lock file.
func (p Platform) PodfileLock() string {
	return filepath.Join(p.Root, "Podfile.lock")
}

// ManifestLock returns the path of the pod tool's own install record.
func (p Platform) ManifestLock() string {
	return filepath.Join(p.Root, "Pods", "Manifest.lock")
}

// XcodeConfig returns the path of the mode-specific build configuration.
func (p Platform) XcodeConfig(mode string) string {
	return filepath.Join(p.Root, "Flutter", mode+".xcconfig")
}

// XcodeProject returns the path of the Xcode project bundle.
func (p Platform) XcodeProject() string {
	return filepath.Join(p.Root, "Runner.xcodeproj")
}

// podConfigInclude is the directive that wires pod build settings into a
// mode xcconfig. Mode is lowercased in the generated file name.
func podConfigInclude(mode string) string {
	return fmt.Sprintf("#include \"Pods/Target Support Files/Pods-Runner/Pods-Runner.%s.xcconfig\"", strings.ToLower(mode))
}

// EnsurePodConfigInclude prepends the pod include directive to the mode
// xcconfig when the file exists and does not already reference it.
// Detection is by substring so hand-edited variants are left alone.
func (p Platform) EnsurePodConfigInclude(mode string) error {
	path := p.XcodeConfig(mode)
	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	directive := podConfigInclude(mode)
	if strings.Contains(string(content), directive) {
		return nil
	}

	updated := directive + "\n" + string(content)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("updating %s: %w", path, err)
	}
	return nil
}
