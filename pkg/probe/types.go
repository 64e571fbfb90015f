// pkg/probe/types.go
package probe

import "runtime"

// Conventional defaults for the host toolchain
const (
	DefaultCompiler = "ocamlc"
	DefaultExecName = "ffitest"
)

// Options configures the compile-link probe
type Options struct {
	Compiler  string // Host compiler/linker, default "ocamlc"
	CCompType string // C compiler family identifier ("cc" or "msvc")
	ObjExt    string // Object file extension; default ".o", ".obj" for msvc
	ExecName  string // Name of the produced executable
}

// withDefaults fills unset fields with conventional values
func (o Options) withDefaults() Options {
	if o.Compiler == "" {
		o.Compiler = DefaultCompiler
	}
	if o.ExecName == "" {
		o.ExecName = DefaultExecName
		if runtime.GOOS == "windows" {
			o.ExecName += ".exe"
		}
	}
	if o.ObjExt == "" {
		if o.CCompType == "msvc" {
			o.ObjExt = ".obj"
		} else {
			o.ObjExt = ".o"
		}
	}
	return o
}
