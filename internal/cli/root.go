// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/ffiprobe/pkg/core"
)

var (
	cfgFile   string
	debug     bool
	ocamlc    string
	extObj    string
	execName  string
	ccompType string
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ffiprobe",
	Short: "Build-time probe for native FFI dependencies",
	Long: `ffiprobe - build-time native dependency probe

Checks whether libffi (and any extra configured native libraries) is
present and usable, by resolving candidate compiler/linker flags and
compiling a minimal test program against them. On success the resolved
flags are printed as key=value lines for the surrounding build system.`,
	Version: "0.1.0",
	// Build systems sometimes pass their own positional arguments
	// through; they are accepted and ignored.
	Args: cobra.ArbitraryArgs,
	RunE: runDiscover,
	// Diagnostics go to stderr in runDiscover; cobra's own usage/error
	// echo would pollute the stdout contract.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ffiprobe/config.yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&ocamlc, "ocamlc", "ocamlc", "host compiler to probe with")
	rootCmd.Flags().StringVar(&extObj, "ext-obj", "", "object file extension (default .o, .obj for msvc)")
	rootCmd.Flags().StringVar(&execName, "exec-name", "", "name of the probe executable")
	rootCmd.Flags().StringVar(&ccompType, "ccomp-type", "cc", "C compiler family (cc, msvc)")
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	if debug {
		config.Debug = true
	}
}
