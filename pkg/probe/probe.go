// pkg/probe/probe.go
package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/ffiprobe/pkg/core"
	"github.com/arc-language/ffiprobe/pkg/runner"
)

// hostStubBase is the filename of the host-language half of the test
// program, written once per probe.
const hostStubBase = "probe_main.ml"

// hostStubSource declares the external symbol every native stub must
// define and calls it from the program entry point.
const hostStubSource = `external test : unit -> unit = "ffiprobe_test"
let () = test ()
`

// Probe empirically confirms a candidate flag configuration by
// compiling and linking a minimal two-file test program. The produced
// executable is never run; a zero compiler exit status is the signal,
// because the native stub references the target library's entry point.
type Probe struct {
	opts    Options
	runner  *runner.Runner
	workDir string
}

// New creates a probe with its own temporary work directory and writes
// the host-language stub into it. Close removes the directory.
func New(r *runner.Runner, opts Options) (*Probe, error) {
	opts = opts.withDefaults()

	workDir, err := os.MkdirTemp("", "ffiprobe-")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(workDir, hostStubBase), []byte(hostStubSource), 0644); err != nil {
		os.RemoveAll(workDir)
		return nil, fmt.Errorf("writing host stub: %w", err)
	}

	return &Probe{opts: opts, runner: r, workDir: workDir}, nil
}

// TryLink compiles and links the test program against the candidate
// flags plus the given native stub source. Every compile-flag token is
// passed through -ccopt and every link-flag token through -cclib. The
// boolean is the empirical availability of the dependency; the error
// covers probe setup failures only.
func (p *Probe) TryLink(flags core.FlagSet, nativeStub string) (bool, error) {
	cFile, err := os.CreateTemp(p.workDir, "probe_stub*.c")
	if err != nil {
		return false, fmt.Errorf("creating native stub: %w", err)
	}
	cName := filepath.Base(cFile.Name())
	base := strings.TrimSuffix(cName, ".c")

	// Cleanup is registered before the compiler runs so the derived
	// object, executable and bytecode artifacts are removed on every
	// exit path. Removal errors are swallowed.
	defer func() {
		for _, name := range []string{
			cName,
			base + p.opts.ObjExt,
			strings.TrimSuffix(hostStubBase, ".ml") + ".cmi",
			strings.TrimSuffix(hostStubBase, ".ml") + ".cmo",
			p.opts.ExecName,
		} {
			os.Remove(filepath.Join(p.workDir, name))
		}
	}()

	if _, err := cFile.WriteString(nativeStub); err != nil {
		cFile.Close()
		return false, fmt.Errorf("writing native stub: %w", err)
	}
	if err := cFile.Close(); err != nil {
		return false, fmt.Errorf("writing native stub: %w", err)
	}

	args := []string{"-custom"}
	for _, opt := range flags.Opts {
		args = append(args, "-ccopt", opt)
	}
	args = append(args, hostStubBase, cName)
	for _, lib := range flags.Libs {
		args = append(args, "-cclib", lib)
	}
	args = append(args, "-o", p.opts.ExecName)

	return p.runner.RunIn(p.workDir, nil, p.opts.Compiler, args...).Succeeded(), nil
}

// WorkDir returns the probe's temporary directory
func (p *Probe) WorkDir() string {
	return p.workDir
}

// Close removes the work directory and everything in it. Best-effort;
// removal errors never mask the probe result.
func (p *Probe) Close() {
	os.RemoveAll(p.workDir)
}
