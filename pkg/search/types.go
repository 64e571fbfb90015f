// pkg/search/types.go
package search

// Entry is one candidate (include dir, lib dir) pair. Entries are
// collected into an ordered list; the first entry whose include dir
// contains the wanted header wins.
type Entry struct {
	IncludeDir string
	LibDir     string
}
