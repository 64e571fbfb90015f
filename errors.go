// errors.go
package ffiprobe

import (
	"errors"

	"github.com/arc-language/ffiprobe/pkg/pkgconf"
)

var (
	// ErrToolUnavailable indicates a metadata tool or the package
	// manager needed to locate it cannot be used on this system
	ErrToolUnavailable = pkgconf.ErrUnavailable

	// ErrNotInstalled indicates the package manager knows the
	// dependency but it is not installed
	ErrNotInstalled = pkgconf.ErrNotInstalled

	// ErrDependencyUnusable indicates the compile-link probe failed
	// after every resolution strategy was exhausted
	ErrDependencyUnusable = errors.New("native dependency missing or unusable")
)
