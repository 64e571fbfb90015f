// pkg/pkgconf/types.go
package pkgconf

import (
	"errors"

	"github.com/arc-language/ffiprobe/pkg/core"
)

var (
	// ErrUnavailable indicates the metadata tool (or the package manager
	// needed to locate it) cannot be used on this system. Callers fall
	// back to the next resolution strategy.
	ErrUnavailable = errors.New("package metadata tool unavailable")

	// ErrNotInstalled indicates the package manager knows the dependency
	// but it is not installed. This is a configuration error, not a
	// simple absence, and is surfaced rather than folded into fallback.
	ErrNotInstalled = errors.New("package not installed")
)

// Status classifies the outcome of a metadata query
type Status int

const (
	// StatusAvailable means both sub-queries succeeded and Flags is valid
	StatusAvailable Status = iota
	// StatusUnavailable means the tool reported no flags for the package
	StatusUnavailable
	// StatusFailed means the tool itself could not be invoked
	StatusFailed
)

// QueryResult is the three-way tagged outcome of a metadata query
type QueryResult struct {
	Status Status
	Flags  core.FlagSet // Valid only when Status is StatusAvailable
	Err    error        // Set only when Status is StatusFailed
}
