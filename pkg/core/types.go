// pkg/core/types.go
package core

import (
	"fmt"
	"strings"
)

// Dependency describes a native library the probe checks for
type Dependency struct {
	Name     string `yaml:"name"`      // Canonical name, used for setup keys and env overrides (e.g. "libffi")
	Header   string `yaml:"header"`    // Canonical header filename (e.g. "ffi.h")
	LinkName string `yaml:"link_name"` // Name passed to -l; defaults to Name without the "lib" prefix
	Stub     string `yaml:"stub"`      // C stub source used by the compile-link probe
}

// Link returns the linker name for the dependency
func (d Dependency) Link() string {
	if d.LinkName != "" {
		return d.LinkName
	}
	return strings.TrimPrefix(d.Name, "lib")
}

// EnvPrefix returns the uppercase prefix of the override variables
// (e.g. "LIBFFI" for LIBFFI_CFLAGS / LIBFFI_LIBS)
func (d Dependency) EnvPrefix() string {
	return strings.ToUpper(d.Name)
}

// FlagSet is one candidate flag configuration for a native dependency.
// Opts are compile-time options, Libs are link-time libraries; the two
// axes are resolved and overridden independently.
type FlagSet struct {
	Opts []string // Compile flags (-I..., -D...)
	Libs []string // Link flags (-L..., -l...)
}

// LibffiStub is the C stub linked by the probe for the built-in libffi
// dependency. It calls the library's initialization entry point so that
// a successful link proves both headers and ABI.
const LibffiStub = `#include <caml/mlvalues.h>
#include <ffi.h>

value ffiprobe_test(value unit)
{
    ffi_cif cif;
    ffi_prep_cif(&cif, FFI_DEFAULT_ABI, 0, &ffi_type_void, NULL);
    return Val_unit;
}
`

// DefaultStub returns a minimal native stub for dependencies declared
// in configuration without a custom one. It includes the canonical
// header and defines the external symbol the host stub calls, proving
// the header is present and the library links.
func DefaultStub(header string) string {
	return fmt.Sprintf(`#include <caml/mlvalues.h>
#include <%s>

value ffiprobe_test(value unit)
{
    return Val_unit;
}
`, header)
}

// Libffi returns the built-in libffi dependency
func Libffi() Dependency {
	return Dependency{
		Name:   "libffi",
		Header: "ffi.h",
		Stub:   LibffiStub,
	}
}
