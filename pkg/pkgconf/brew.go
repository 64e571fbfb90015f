// pkg/pkgconf/brew.go
package pkgconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/ffiprobe/pkg/core"
	"github.com/arc-language/ffiprobe/pkg/runner"
)

// NewBrew resolves a Homebrew-provided pkg-config view for one
// dependency. The brew prefix is queried first, then the installed
// version of the dependency, and pkg-config is pointed at the versioned
// Cellar pkgconfig directory via PKG_CONFIG_PATH.
//
// Returns ErrUnavailable when brew itself cannot answer (callers fall
// back to the next strategy) and ErrNotInstalled when brew knows the
// formula but it is not installed (a configuration error the caller
// must surface).
func NewBrew(r *runner.Runner, dep core.Dependency) (*Tool, error) {
	prefix := r.Run("brew", "--prefix")
	if prefix.ExitStatus == 127 {
		return nil, fmt.Errorf("brew not found: %w", ErrUnavailable)
	}
	if !prefix.Succeeded() {
		return nil, fmt.Errorf("resolving brew prefix: %w", ErrUnavailable)
	}

	versions := r.Run("brew", "list", "--versions", dep.Name)
	if versions.ExitStatus == 127 {
		return nil, fmt.Errorf("brew not found: %w", ErrUnavailable)
	}
	fields := strings.Fields(versions.Output)
	// A not-installed formula exits non-zero with no output. A failing
	// brew prints a diagnostic; that is a tool error, not an answer.
	if !versions.Succeeded() && len(fields) > 0 {
		return nil, fmt.Errorf("querying brew versions for %s: %w", dep.Name, ErrUnavailable)
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("%s (try: brew install %s): %w", dep.Name, dep.Name, ErrNotInstalled)
	}
	// Output is "<formula> <version> [older versions...]"
	version := fields[1]

	brewPrefix := strings.TrimSpace(prefix.Output)
	pcDir := filepath.Join(brewPrefix, "Cellar", dep.Name, version, "lib", "pkgconfig")

	// Prefer the pkg-config shipped under the brew prefix; it may not
	// be on PATH at all.
	toolPath := filepath.Join(brewPrefix, "bin", DefaultTool)
	if _, err := os.Stat(toolPath); err != nil {
		toolPath = DefaultTool
	}

	return &Tool{
		runner: r,
		path:   toolPath,
		env:    []string{"PKG_CONFIG_PATH=" + pcDir},
	}, nil
}
