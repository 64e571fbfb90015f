// pkg/runner/runner.go
package runner

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands synchronously, capturing combined
// output and teeing it into a shared log file for diagnostics on
// failure. Execution is blocking; no command is left running.
type Runner struct {
	logPath string
	logger  *log.Logger
}

// New creates a runner. Combined output of every command is appended to
// logPath when it is non-empty. A nil logger discards debug output.
func New(logPath string, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{logPath: logPath, logger: logger}
}

// Run executes a command and returns its result
func (r *Runner) Run(name string, args ...string) Result {
	return r.RunIn("", nil, name, args...)
}

// RunIn executes a command in dir with extra environment variables
// appended to the inherited environment. An empty dir means the current
// working directory.
func (r *Runner) RunIn(dir string, extraEnv []string, name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	r.logger.Printf("run: %s %s", name, strings.Join(args, " "))

	out, err := cmd.CombinedOutput()
	status := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		} else {
			// Command could not be started at all (not found, not executable)
			status = 127
		}
	}

	r.appendLog(name, args, out, status)

	return Result{ExitStatus: status, Output: string(out)}
}

// Succeeds executes a command and reports whether it exited zero
func (r *Runner) Succeeds(name string, args ...string) bool {
	return r.Run(name, args...).Succeeded()
}

// appendLog writes one command transcript into the shared log file.
// Log write failures are swallowed; the log is best-effort diagnostics.
func (r *Runner) appendLog(name string, args []string, out []byte, status int) {
	if r.logPath == "" {
		return
	}
	f, err := os.OpenFile(r.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "$ %s %s\n", name, strings.Join(args, " "))
	f.Write(out)
	fmt.Fprintf(f, "(exit %d)\n", status)
}
