package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/ffiprobe"
)

func writeShim(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

// capture redirects a stream during fn and returns what was written
func capture(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := *stream
	*stream = w
	defer func() { *stream = orig }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()
	w.Close()
	return <-done
}

func unsetOverrides(t *testing.T) {
	t.Helper()
	for _, v := range []string{"LIBFFI_CFLAGS", "LIBFFI_LIBS"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDiscover_EnvOverrideSuccess(t *testing.T) {
	shims := t.TempDir()
	ocamlc := writeShim(t, shims, "ocamlc", "exit 0")
	t.Setenv("PATH", shims)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBFFI_CFLAGS", "-I/x")
	t.Setenv("LIBFFI_LIBS", "-L/x -lffi")

	var execErr error
	out := capture(t, &os.Stdout, func() {
		rootCmd.SetArgs([]string{"--ocamlc", ocamlc})
		execErr = Execute()
	})

	require.NoError(t, execErr)
	assert.Contains(t, out, "libffi_opt=-I/x\n")
	assert.Contains(t, out, "libffi_lib=-L/x -lffi\n")
}

func TestDiscover_NothingAvailableFailsWithGuidance(t *testing.T) {
	shims := t.TempDir()
	ocamlc := writeShim(t, shims, "ocamlc", "exit 2")
	t.Setenv("PATH", shims)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("C_INCLUDE_PATH", "")
	t.Setenv("LIBRARY_PATH", "")
	unsetOverrides(t)

	var execErr error
	errOut := capture(t, &os.Stderr, func() {
		rootCmd.SetArgs([]string{"--ocamlc", ocamlc})
		execErr = Execute()
	})

	require.Error(t, execErr)
	assert.ErrorIs(t, execErr, ffiprobe.ErrDependencyUnusable)
	assert.Contains(t, errOut, "libffi")
	assert.Contains(t, errOut, "LIBFFI_CFLAGS")
	assert.Contains(t, errOut, "LIBFFI_LIBS")
}

func TestDiscover_StaleMetadataStillFails(t *testing.T) {
	shims := t.TempDir()
	writeShim(t, shims, "pkg-config", `
case "$1" in
--version) echo "1.8.0" ;;
--cflags) echo "-I/stale" ;;
--libs) echo "-L/stale -lffi" ;;
esac
`)
	ocamlc := writeShim(t, shims, "ocamlc", "exit 2")
	t.Setenv("PATH", shims)
	t.Setenv("HOME", t.TempDir())
	unsetOverrides(t)

	var execErr error
	capture(t, &os.Stderr, func() {
		rootCmd.SetArgs([]string{"--ocamlc", ocamlc})
		execErr = Execute()
	})

	// The probe is authoritative over package metadata.
	assert.ErrorIs(t, execErr, ffiprobe.ErrDependencyUnusable)
}

func TestDiscover_PositionalArgumentsIgnored(t *testing.T) {
	shims := t.TempDir()
	ocamlc := writeShim(t, shims, "ocamlc", "exit 0")
	t.Setenv("PATH", shims)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBFFI_CFLAGS", "-I/x")
	t.Setenv("LIBFFI_LIBS", "-L/x -lffi")

	var execErr error
	capture(t, &os.Stdout, func() {
		rootCmd.SetArgs([]string{"--ocamlc", ocamlc, "leftover", "build-args"})
		execErr = Execute()
	})
	assert.NoError(t, execErr)
}

func TestDiscover_ConfiguredExtraDependency(t *testing.T) {
	shims := t.TempDir()
	ocamlc := writeShim(t, shims, "ocamlc", "exit 0")
	t.Setenv("PATH", shims)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LIBFFI_CFLAGS", "-I/x")
	t.Setenv("LIBFFI_LIBS", "-L/x -lffi")
	t.Setenv("LIBZMQ_CFLAGS", "-I/z")
	t.Setenv("LIBZMQ_LIBS", "-L/z -lzmq")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
dependencies:
  - name: libzmq
    header: zmq.h
    link_name: zmq
`), 0644))

	var execErr error
	out := capture(t, &os.Stdout, func() {
		rootCmd.SetArgs([]string{"--ocamlc", ocamlc, "--config", cfgPath})
		execErr = Execute()
	})

	require.NoError(t, execErr)
	assert.Contains(t, out, "libffi_opt=-I/x\n")
	assert.Contains(t, out, "libzmq_opt=-I/z\n")
	assert.Contains(t, out, "libzmq_lib=-L/z -lzmq\n")
}
