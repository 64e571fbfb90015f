// pkg/search/header.go
package search

import (
	"os"
	"path/filepath"
)

// FindHeader scans the candidate list in order and returns the first
// entry whose include dir contains the named header. This is a pure
// existence check; header contents are never inspected.
func FindHeader(name string, entries []Entry) (Entry, bool) {
	for _, entry := range entries {
		if fileExists(filepath.Join(entry.IncludeDir, name)) {
			return entry, true
		}
	}
	return Entry{}, false
}

// fileExists checks if a path exists on the filesystem
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
