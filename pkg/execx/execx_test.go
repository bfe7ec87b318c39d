package execx

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pcietopo/pkg/observability"
)

func TestExecNotInstalled(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), nil, "pcietopo-no-such-tool")
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("err = %v, want ErrNotInstalled", err)
	}
	if Available("pcietopo-no-such-tool") {
		t.Error("Available should be false")
	}
}

func TestExecStdin(t *testing.T) {
	if !Available("cat") {
		t.Skip("cat not available")
	}
	out, err := Exec{}.Run(context.Background(), []byte("hello"), "cat")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Errorf("out = %q", out)
	}
}

func TestExecFailureIncludesStderr(t *testing.T) {
	if !Available("sh") {
		t.Skip("sh not available")
	}
	_, err := Exec{}.Run(context.Background(), nil, "sh", "-c", "echo boom >&2; exit 3")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want stderr in message", err)
	}
}

type recordingHooks struct {
	observability.NoopCommandHooks
	names []string
}

func (r *recordingHooks) OnCommand(_ context.Context, name string, _ []string, _ time.Duration, _ error) {
	r.names = append(r.names, name)
}

func TestExecReportsToHooks(t *testing.T) {
	if !Available("true") {
		t.Skip("true not available")
	}
	rec := &recordingHooks{}
	observability.SetCommandHooks(rec)
	defer observability.Reset()

	if _, err := (Exec{}).Run(context.Background(), nil, "true"); err != nil {
		t.Fatal(err)
	}
	if len(rec.names) != 1 || rec.names[0] != "true" {
		t.Errorf("hooks saw %v", rec.names)
	}
}

func TestRunnerFunc(t *testing.T) {
	var r Runner = RunnerFunc(func(_ context.Context, _ []byte, name string, args ...string) ([]byte, error) {
		return []byte(name + " " + strings.Join(args, " ")), nil
	})
	out, _ := r.Run(context.Background(), nil, "lspci", "-vmm")
	if string(out) != "lspci -vmm" {
		t.Errorf("out = %q", out)
	}
}
