// pkg/pkgconf/query.go
package pkgconf

import (
	"strings"

	"github.com/arc-language/ffiprobe/pkg/core"
	"github.com/arc-language/ffiprobe/pkg/runner"
)

// DefaultTool is the conventional name of the package metadata tool
const DefaultTool = "pkg-config"

// Tool queries an installed package-metadata registry for the compiler
// and linker flags of a named library.
type Tool struct {
	runner *runner.Runner
	path   string
	env    []string // Extra environment for every invocation (e.g. PKG_CONFIG_PATH override)
}

// New creates a Tool using the pkg-config found on PATH
func New(r *runner.Runner) *Tool {
	return &Tool{runner: r, path: DefaultTool}
}

// Available reports whether the tool can be invoked at all
func (t *Tool) Available() bool {
	return t.runner.RunIn("", t.env, t.path, "--version").Succeeded()
}

// Query obtains compile and link flags for a named library. The result
// is available only if both the --cflags and --libs sub-queries exit
// zero; each flag list is the whitespace-split tool output.
func (t *Tool) Query(name string) QueryResult {
	opts, res := t.tokens("--cflags", name)
	if res.ExitStatus == 127 {
		return QueryResult{Status: StatusFailed, Err: ErrUnavailable}
	}
	if !res.Succeeded() {
		return QueryResult{Status: StatusUnavailable}
	}

	libs, res := t.tokens("--libs", name)
	if res.ExitStatus == 127 {
		return QueryResult{Status: StatusFailed, Err: ErrUnavailable}
	}
	if !res.Succeeded() {
		return QueryResult{Status: StatusUnavailable}
	}

	return QueryResult{
		Status: StatusAvailable,
		Flags:  core.FlagSet{Opts: opts, Libs: libs},
	}
}

func (t *Tool) tokens(query, name string) ([]string, runner.Result) {
	res := t.runner.RunIn("", t.env, t.path, query, name)
	return strings.Fields(res.Output), res
}
