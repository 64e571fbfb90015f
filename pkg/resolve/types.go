// pkg/resolve/types.go
package resolve

import (
	"github.com/arc-language/ffiprobe/pkg/pkgconf"
	"github.com/arc-language/ffiprobe/pkg/search"
)

// MetadataSource yields authoritative flags for a named library from an
// installed metadata registry.
type MetadataSource interface {
	Query(name string) pkgconf.QueryResult
}

// HeaderFinder locates a header on the candidate search paths
type HeaderFinder func(name string) (search.Entry, bool)
