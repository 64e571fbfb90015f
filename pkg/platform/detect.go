// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected system platform and the external
// tools the probe can lean on.
type Platform struct {
	OS           string // linux, darwin, windows
	Arch         string // amd64, arm64, 386, arm
	HasBrew      bool   // Homebrew on PATH
	HasPkgConfig bool   // pkg-config on PATH
}

// Detect detects the current platform and available helper tools
func Detect() *Platform {
	return &Platform{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		HasBrew:      commandExists("brew"),
		HasPkgConfig: commandExists("pkg-config"),
	}
}

// UseBrew reports whether the Homebrew-flavored metadata resolution
// applies: darwin with brew installed.
func (p *Platform) UseBrew() bool {
	return p.OS == "darwin" && p.HasBrew
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (brew: %v, pkg-config: %v)",
		p.OS, p.Arch, p.HasBrew, p.HasPkgConfig)
}
