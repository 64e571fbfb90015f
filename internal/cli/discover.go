// internal/cli/discover.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/ffiprobe"
	"github.com/arc-language/ffiprobe/pkg/core"
)

// progressColumn is the width the "testing for <name>:" prefix is
// padded to so the available/unavailable column lines up.
const progressColumn = 32

var (
	availableWord   = color.GreenString("available")
	unavailableWord = color.YellowString("unavailable")
)

// printProgress writes one operator-facing detection line to stderr
func printProgress(name string, available bool) {
	word := unavailableWord
	if available {
		word = availableWord
	}
	fmt.Fprintf(os.Stderr, "%-*s %s\n", progressColumn, "testing for "+name+":", word)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stderr, "[DEBUG] ", log.LstdFlags)
	}

	// Shared compiler/tool log, removed on every exit path. Its
	// contents are echoed to stderr before removal when the probe
	// fails.
	logFile, err := os.CreateTemp("", "ffiprobe-*.log")
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	logPath := logFile.Name()
	logFile.Close()
	defer os.Remove(logPath)

	prober, err := ffiprobe.NewProber(ffiprobe.Options{
		Compiler:       ocamlc,
		CCompType:      ccompType,
		ObjExt:         extObj,
		ExecName:       execName,
		LogPath:        logPath,
		SearchPrefixes: config.SearchPrefixes,
		Progress:       printProgress,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer prober.Close()

	if !prober.MetadataAvailable() {
		fmt.Fprintln(os.Stderr, "Warning: pkg-config not found, falling back to filesystem search")
	}

	deps := []core.Dependency{core.Libffi()}
	for _, dep := range config.Dependencies {
		if dep.Stub == "" {
			dep.Stub = core.DefaultStub(dep.Header)
		}
		deps = append(deps, dep)
	}

	var missing []core.Dependency
	for _, dep := range deps {
		report, err := prober.Check(dep)
		if err != nil {
			// ErrNotInstalled carries its own corrective message
			// ("try: brew install ..."); hard probe errors propagate
			// as-is. Both end the run.
			return err
		}
		if !report.Available {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		for _, dep := range missing {
			printGuidance(dep)
		}
		echoLog(logPath)
		return ffiprobe.ErrDependencyUnusable
	}

	for _, line := range prober.Setup().Lines() {
		fmt.Println(line)
	}
	return nil
}

// printGuidance tells the operator how to make a missing dependency
// usable: install it, or point the probe at it with the override
// variables.
func printGuidance(dep core.Dependency) {
	prefix := dep.EnvPrefix()
	fmt.Fprintf(os.Stderr, `
Unable to compile and link against %s.

Install the development package for %s, for example:
    apt install %s-dev        (Debian/Ubuntu)
    dnf install %s-devel      (Fedora)
    brew install %s           (macOS)

or point the probe at an existing installation:
    %s_CFLAGS="-I/path/to/include" %s_LIBS="-L/path/to/lib -l%s"
`, dep.Name, dep.Name, dep.Name, dep.Name, dep.Name, prefix, prefix, dep.Link())
}

// echoLog dumps the external-command transcript to stderr so the
// compiler output survives the log file's removal.
func echoLog(path string) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\nCommand log:\n%s\n", strings.TrimRight(string(data), "\n"))
}
