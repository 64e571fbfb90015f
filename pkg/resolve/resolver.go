// pkg/resolve/resolver.go
package resolve

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/arc-language/ffiprobe/pkg/core"
	"github.com/arc-language/ffiprobe/pkg/pkgconf"
)

// Resolver produces the final flag configuration for a dependency.
// Decision order per axis: environment override, then package
// metadata, then filesystem header search, then a bare -l link.
type Resolver struct {
	Metadata  MetadataSource                // nil when no metadata tool is usable
	Headers   HeaderFinder                  // required
	LookupEnv func(string) (string, bool)   // defaults to os.LookupEnv
	Logger    *log.Logger
}

// New creates a resolver over the given sources
func New(metadata MetadataSource, headers HeaderFinder, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{
		Metadata:  metadata,
		Headers:   headers,
		LookupEnv: os.LookupEnv,
		Logger:    logger,
	}
}

// Resolve computes the flag configuration for a dependency. The two
// override variables <NAME>_CFLAGS and <NAME>_LIBS are treated
// uniformly: a set variable wins on its own axis, the other axis is
// auto-discovered. Resolution runs exactly once; the probe result
// never triggers a second pass.
func (r *Resolver) Resolve(dep core.Dependency) core.FlagSet {
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cflags, haveCflags := lookup(dep.EnvPrefix() + "_CFLAGS")
	libs, haveLibs := lookup(dep.EnvPrefix() + "_LIBS")

	if haveCflags && haveLibs {
		r.Logger.Printf("%s: both override variables set, skipping discovery", dep.Name)
		return core.FlagSet{Opts: strings.Fields(cflags), Libs: strings.Fields(libs)}
	}

	flags := r.discover(dep)

	if haveCflags {
		flags.Opts = strings.Fields(cflags)
	}
	if haveLibs {
		flags.Libs = strings.Fields(libs)
	}
	return flags
}

// discover computes the non-overridden flag pair: metadata query when a
// source is wired and answers, else header search, else a bare link
// relying on the default linker search path.
func (r *Resolver) discover(dep core.Dependency) core.FlagSet {
	if r.Metadata != nil {
		res := r.Metadata.Query(dep.Name)
		if res.Status == pkgconf.StatusAvailable {
			r.Logger.Printf("%s: flags from package metadata", dep.Name)
			return res.Flags
		}
		if res.Status == pkgconf.StatusFailed {
			r.Logger.Printf("%s: metadata query failed: %v", dep.Name, res.Err)
		}
	}

	if entry, ok := r.Headers(dep.Header); ok {
		r.Logger.Printf("%s: found %s in %s", dep.Name, dep.Header, entry.IncludeDir)
		return core.FlagSet{
			Opts: []string{"-I" + entry.IncludeDir},
			Libs: []string{"-L" + entry.LibDir, "-l" + dep.Link()},
		}
	}

	r.Logger.Printf("%s: header %s not found, relying on default linker search", dep.Name, dep.Header)
	return core.FlagSet{Libs: []string{"-l" + dep.Link()}}
}
