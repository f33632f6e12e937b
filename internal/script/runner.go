package script

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// Result captures one collaborator script invocation. A deadline kill is
// reported via TimedOut so callers can distinguish it from a script that ran
// to completion and exited non-zero.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Success reports whether the script ran to completion and exited zero.
func (r Result) Success() bool {
	return !r.TimedOut && r.ExitCode == 0
}

// ErrorText returns the most useful failure text for display: stderr when
// present, stdout otherwise.
func (r Result) ErrorText() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// Run executes a collaborator script with the given arguments, capturing
// stdout and stderr separately. The context deadline bounds the run. Failure
// to start, a non-zero exit, and a timeout are all reported through the
// Result rather than as an error.
func Run(ctx context.Context, path string, args ...string) Result {
	slog.Info("running script", "path", path, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.TimedOut = true
		res.ExitCode = -1
		return res
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// Could not be started at all (missing script, bad permissions).
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}
	return res
}
