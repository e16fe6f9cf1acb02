package ledger

import (
	"context"
	"os/exec"
	"time"
)

// Runner executes the external ledger binary and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	bin     string
	timeout time.Duration
}

// NewRunner returns a Runner that invokes bin as a subprocess. Each
// invocation is bounded by timeout (if positive) and is killed when the
// caller's context is cancelled.
func NewRunner(bin string, timeout time.Duration) Runner {
	return &execRunner{bin: bin, timeout: timeout}
}

func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	output, err := cmd.Output()
	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, &CommandError{Args: args, Stderr: stderr, Err: err}
	}
	return output, nil
}
