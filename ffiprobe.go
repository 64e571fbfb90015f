// ffiprobe.go
package ffiprobe

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/arc-language/ffiprobe/pkg/core"
	"github.com/arc-language/ffiprobe/pkg/pkgconf"
	"github.com/arc-language/ffiprobe/pkg/platform"
	"github.com/arc-language/ffiprobe/pkg/probe"
	"github.com/arc-language/ffiprobe/pkg/resolve"
	"github.com/arc-language/ffiprobe/pkg/runner"
	"github.com/arc-language/ffiprobe/pkg/search"
)

// Re-export core types for convenience
type (
	Dependency = core.Dependency
	FlagSet    = core.FlagSet
	Setup      = core.Setup
	Config     = core.Config
)

// Libffi returns the built-in libffi dependency
func Libffi() Dependency {
	return core.Libffi()
}

// Options configures a Prober
type Options struct {
	Compiler       string // Host compiler, default "ocamlc"
	CCompType      string // C compiler family identifier
	ObjExt         string // Object file extension
	ExecName       string // Produced executable name
	LogPath        string // Shared diagnostics log for all external commands
	SearchPrefixes []string
	// Progress, when set, is called after each detection step with its
	// name and outcome. Operator-facing only.
	Progress func(name string, available bool)
	Logger   *log.Logger // Debug logger; nil discards
}

// Report is the result of probing one dependency
type Report struct {
	Flags     core.FlagSet
	Available bool
}

// Prober is the capability-probing engine. It wires path discovery,
// metadata querying and the compile-link probe behind one Check call
// and accumulates resolved flags for the final machine-readable output.
type Prober struct {
	opts     Options
	plat     *platform.Platform
	runner   *runner.Runner
	probe    *probe.Probe
	setup    *core.Setup
	metaOK   bool
	logger   *log.Logger
	progress func(string, bool)
}

// NewProber creates a prober, detecting the platform and the
// availability of the package metadata tool. A missing metadata tool is
// reported through Progress and is not an error.
func NewProber(opts Options) (*Prober, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(string, bool) {}
	}

	r := runner.New(opts.LogPath, logger)

	plat := platform.Detect()
	logger.Printf("platform: %s", plat)
	progress("homebrew", plat.UseBrew())

	metaOK := pkgconf.New(r).Available()
	progress(pkgconf.DefaultTool, metaOK)

	p, err := probe.New(r, probe.Options{
		Compiler:  opts.Compiler,
		CCompType: opts.CCompType,
		ObjExt:    opts.ObjExt,
		ExecName:  opts.ExecName,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing probe: %w", err)
	}

	return &Prober{
		opts:     opts,
		plat:     plat,
		runner:   r,
		probe:    p,
		setup:    core.NewSetup(),
		metaOK:   metaOK,
		logger:   logger,
		progress: progress,
	}, nil
}

// Platform returns the detected platform
func (p *Prober) Platform() *platform.Platform {
	return p.plat
}

// MetadataAvailable reports whether the package metadata tool is usable
func (p *Prober) MetadataAvailable() bool {
	return p.metaOK
}

// Setup returns the accumulator of resolved flag categories
func (p *Prober) Setup() *core.Setup {
	return p.setup
}

// Check resolves flags for one dependency, records them, and runs the
// compile-link probe against them. Resolved flags are recorded before
// the probe so they appear in the setup even when the probe fails; the
// probe outcome is authoritative over metadata.
//
// The returned error is non-nil only for hard failures: a probe setup
// error, or ErrNotInstalled from the platform package manager.
func (p *Prober) Check(dep core.Dependency) (*Report, error) {
	meta, err := p.metadataFor(dep)
	if err != nil {
		return nil, err
	}

	resolver := resolve.New(meta, p.findHeader, p.logger)
	flags := resolver.Resolve(dep)

	p.setup.Set(dep.Name+"_opt", flags.Opts)
	p.setup.Set(dep.Name+"_lib", flags.Libs)

	ok, err := p.probe.TryLink(flags, dep.Stub)
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", dep.Name, err)
	}
	p.progress(dep.Name, ok)

	return &Report{Flags: flags, Available: ok}, nil
}

// metadataFor selects the metadata source for a dependency. On the
// Homebrew-flavored platform the brew-resolved variant is preferred;
// when brew cannot answer, the plain tool is used if present. A nil
// source means discovery falls through to header search.
func (p *Prober) metadataFor(dep core.Dependency) (resolve.MetadataSource, error) {
	if p.plat.UseBrew() {
		tool, err := pkgconf.NewBrew(p.runner, dep)
		if err == nil {
			return tool, nil
		}
		if errors.Is(err, pkgconf.ErrNotInstalled) {
			return nil, err
		}
		p.logger.Printf("%s: brew variant unavailable: %v", dep.Name, err)
	}
	if p.metaOK {
		return pkgconf.New(p.runner), nil
	}
	return nil, nil
}

// findHeader scans the candidate search paths for a header
func (p *Prober) findHeader(name string) (search.Entry, bool) {
	return search.FindHeader(name, search.Candidates(p.opts.SearchPrefixes...))
}

// Close releases the probe's temporary resources. Best-effort.
func (p *Prober) Close() {
	p.probe.Close()
}
