// pkg/search/paths.go
package search

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment variables consulted for candidate search paths. Each
// holds an os.PathListSeparator-delimited list of directories.
const (
	IncludePathVar = "C_INCLUDE_PATH"
	LibraryPathVar = "LIBRARY_PATH"
)

// defaultPrefixes returns the fixed platform-convention prefixes,
// each expanded to {prefix/include, prefix/lib}
func defaultPrefixes() []string {
	prefixes := []string{
		"/usr",
		"/usr/local",
		"/opt",
		"/opt/local",
		"/sw",
	}
	if runtime.GOOS == "windows" {
		prefixes = append(prefixes, `C:\mingw64`)
	}
	return prefixes
}

// splitPathList splits a path-list environment variable value. Empty
// segments are dropped; an unset variable contributes no entries.
func splitPathList(value string) []string {
	var dirs []string
	for _, dir := range strings.Split(value, string(os.PathListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Candidates builds the ordered search list: C_INCLUDE_PATH entries
// first (lib dir inferred as <dir>/../lib), then LIBRARY_PATH entries
// (include dir inferred as <dir>/../include), then any extra prefixes,
// then the platform defaults. Duplicates are not removed; the header
// search stops at the first match so they are harmless.
func Candidates(extraPrefixes ...string) []Entry {
	var entries []Entry

	for _, dir := range splitPathList(os.Getenv(IncludePathVar)) {
		entries = append(entries, Entry{
			IncludeDir: dir,
			LibDir:     filepath.Join(dir, "..", "lib"),
		})
	}

	for _, dir := range splitPathList(os.Getenv(LibraryPathVar)) {
		entries = append(entries, Entry{
			IncludeDir: filepath.Join(dir, "..", "include"),
			LibDir:     dir,
		})
	}

	prefixes := append(append([]string{}, extraPrefixes...), defaultPrefixes()...)
	for _, prefix := range prefixes {
		entries = append(entries, Entry{
			IncludeDir: filepath.Join(prefix, "include"),
			LibDir:     filepath.Join(prefix, "lib"),
		})
	}

	return entries
}
