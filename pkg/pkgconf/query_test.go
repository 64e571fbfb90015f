package pkgconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/ffiprobe/pkg/runner"
)

// writeTool installs an executable shell script shim named name into
// dir, which tests place on PATH.
func writeTool(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
}

const fakePkgConfig = `
case "$1" in
--version)
    echo "1.8.0"
    ;;
--cflags)
    if [ "$2" = "knownlib" ]; then echo "-I/fake/include"; else exit 1; fi
    ;;
--libs)
    if [ "$2" = "knownlib" ]; then echo "-L/fake/lib -lknown"; else exit 1; fi
    ;;
*)
    exit 2
    ;;
esac
`

func withToolDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

func TestToolAvailable(t *testing.T) {
	dir := withToolDir(t)
	writeTool(t, dir, "pkg-config", fakePkgConfig)

	tool := New(runner.New("", nil))
	assert.True(t, tool.Available())
}

func TestQuery_KnownPackage(t *testing.T) {
	dir := withToolDir(t)
	writeTool(t, dir, "pkg-config", fakePkgConfig)

	res := New(runner.New("", nil)).Query("knownlib")
	require.Equal(t, StatusAvailable, res.Status)
	assert.Equal(t, []string{"-I/fake/include"}, res.Flags.Opts)
	assert.Equal(t, []string{"-L/fake/lib", "-lknown"}, res.Flags.Libs)
}

func TestQuery_UnknownPackage(t *testing.T) {
	dir := withToolDir(t)
	writeTool(t, dir, "pkg-config", fakePkgConfig)

	res := New(runner.New("", nil)).Query("nosuchlib")
	assert.Equal(t, StatusUnavailable, res.Status)
}

func TestQuery_BothAxesRequired(t *testing.T) {
	dir := withToolDir(t)
	// cflags succeed but libs fail: the combined result must not be
	// available.
	writeTool(t, dir, "pkg-config", `
case "$1" in
--cflags) echo "-I/fake/include" ;;
--libs) exit 1 ;;
esac
`)

	res := New(runner.New("", nil)).Query("partial")
	assert.Equal(t, StatusUnavailable, res.Status)
}

func TestQuery_LibsAxisToolFailure(t *testing.T) {
	dir := withToolDir(t)
	// Tool breakage on the second sub-query is a tool failure, not a
	// missing package.
	writeTool(t, dir, "pkg-config", `
case "$1" in
--cflags) echo "-I/fake/include" ;;
--libs) exit 127 ;;
esac
`)

	res := New(runner.New("", nil)).Query("anything")
	require.Equal(t, StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrUnavailable)
}

func TestQuery_ToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	res := New(runner.New("", nil)).Query("anything")
	require.Equal(t, StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrUnavailable)
}
