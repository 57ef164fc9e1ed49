// Package prowler invokes the external Prowler scanner as a child process.
// Prowler is a black box here: it reads the just-installed AWS credentials
// through its own SDK, writes its report artifacts under the output
// directory, and signals its outcome through an exit-code convention.
package prowler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/drover-cli/drover/pkg/types"
)

// DefaultBin is the binary name looked up on PATH when none is configured.
const DefaultBin = "prowler"

// ExitFindings is Prowler's distinguished exit code: the scan completed but
// some checks failed. It is a warning, not a hard failure.
const ExitFindings = 3

// Request describes one scanner invocation.
type Request struct {
	Region  string
	Account string
	// ExtraEnv is appended to the inherited environment of the child
	// process. Used to scope a key pair to a single invocation.
	ExtraEnv []string
}

// Execer launches a child process and reports its exit code. The error is
// non-nil only when the process could not be run at all.
type Execer interface {
	Exec(ctx context.Context, path string, args, extraEnv []string, stdout, stderr io.Writer) (int, error)
}

// systemExecer runs real child processes via os/exec.
type systemExecer struct{}

func (systemExecer) Exec(ctx context.Context, path string, args, extraEnv []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}

// Runner drives Prowler invocations. Child output goes to Stdout/Stderr
// unbuffered so the operator sees scan progress live.
type Runner struct {
	Bin    string
	Stdout io.Writer
	Stderr io.Writer
	Exec   Execer
}

// NewRunner creates a runner for the given binary, streaming child output to
// the process's own stdout and stderr. An empty bin selects DefaultBin.
func NewRunner(bin string) *Runner {
	if bin == "" {
		bin = DefaultBin
	}
	return &Runner{
		Bin:    bin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exec:   systemExecer{},
	}
}

// Args returns the argument list for a request, equivalent to
// `prowler aws -f <region> -F <account>`. The -F flag makes Prowler stamp
// the account name into each report file it writes.
func (r *Runner) Args(req Request) []string {
	return []string{"aws", "-f", req.Region, "-F", req.Account}
}

// CommandLine returns the full command for display to the operator.
func (r *Runner) CommandLine(req Request) string {
	return r.Bin + " " + strings.Join(r.Args(req), " ")
}

// Scan runs one Prowler invocation to completion and classifies its exit
// status. A non-nil error means the account failed hard; findings-only exits
// return StatusFindings with no error.
func (r *Runner) Scan(ctx context.Context, req Request) (types.ScanStatus, int, error) {
	code, err := r.Exec.Exec(ctx, r.Bin, r.Args(req), req.ExtraEnv, r.Stdout, r.Stderr)
	if err != nil {
		// A binary missing from PATH is an environment problem, not a
		// scan outcome. Report it distinctly from a scan that ran and
		// failed.
		if errors.Is(err, exec.ErrNotFound) {
			return types.StatusFailed, code, fmt.Errorf("scanner binary %q not found in PATH: %w", r.Bin, err)
		}
		return types.StatusFailed, code, fmt.Errorf("launch %s: %w", r.Bin, err)
	}

	switch code {
	case 0:
		return types.StatusPassed, 0, nil
	case ExitFindings:
		return types.StatusFindings, code, nil
	default:
		return types.StatusFailed, code, fmt.Errorf("%s exited with code %d", r.Bin, code)
	}
}
