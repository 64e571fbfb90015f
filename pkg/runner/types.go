// pkg/runner/types.go
package runner

// Result is the outcome of one external command invocation. Produced
// fresh per invocation; never persisted.
type Result struct {
	ExitStatus int    // Process exit status; 127 if the command could not be started
	Output     string // Combined stdout and stderr
}

// Succeeded reports whether the command exited with status zero
func (r Result) Succeeded() bool {
	return r.ExitStatus == 0
}
