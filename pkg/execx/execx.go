// Package execx runs the external tools pcietopo relies on: lspci for
// device names, nvidia-smi for GPU indices and NVLink, and rsvg-convert
// for PDF output.
//
// Callers depend on the [Runner] interface so tests can replace the tools
// with canned output.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/pcietopo/pkg/observability"
)

// ErrNotInstalled is returned when the requested tool is not in PATH.
var ErrNotInstalled = errors.New("command not installed")

// DefaultTimeout bounds a single command run.
const DefaultTimeout = 10 * time.Second

// Runner runs a command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to [Runner].
type RunnerFunc func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	return f(ctx, stdin, name, args...)
}

// Exec runs commands with os/exec.
type Exec struct {
	// Timeout bounds each run. Zero selects DefaultTimeout.
	Timeout time.Duration
}

// Run executes name with args, feeding stdin when non-nil. A non-zero exit
// status is an error that includes the command's stderr.
func (e Exec) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNotInstalled)
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	start := time.Now()
	err := cmd.Run()
	observability.Command().OnCommand(ctx, name, args, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}

// Available reports whether name can be found in PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

var _ Runner = Exec{}
