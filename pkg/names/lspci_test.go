package names

import (
	"context"
	"errors"
	"testing"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

const sampleLSPCI = "Slot:\t0000:17:00.0\nClass:\t3D controller\nVendor:\tNVIDIA Corporation\nDevice:\tGH100 [H100 SXM5 80GB]\nRev:\ta1\n\n" +
	"Slot:\t0000:2a:00.0\nClass:\t3D controller\nVendor:\tOther Vendor\nDevice:\tOther Device\n"

func TestParseLSPCI(t *testing.T) {
	vendor, device := parseLSPCI([]byte(sampleLSPCI))
	if vendor != "NVIDIA Corporation" {
		t.Errorf("vendor = %q", vendor)
	}
	if device != "GH100 [H100 SXM5 80GB]" {
		t.Errorf("device = %q", device)
	}

	if v, d := parseLSPCI(nil); v != "" || d != "" {
		t.Errorf("empty output = %q, %q", v, d)
	}
}

func TestQueryLSPCI(t *testing.T) {
	var gotArgs []string
	run := execx.RunnerFunc(func(_ context.Context, _ []byte, name string, args ...string) ([]byte, error) {
		gotArgs = append([]string{name}, args...)
		return []byte(sampleLSPCI), nil
	})

	v, d, ok := queryLSPCI(context.Background(), run, "10de", "2330")
	if !ok || v != "NVIDIA Corporation" || d != "GH100 [H100 SXM5 80GB]" {
		t.Errorf("queryLSPCI = %q, %q, %v", v, d, ok)
	}
	want := []string{"lspci", "-vmm", "-d", "10de:2330"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Errorf("args = %v, want %v", gotArgs, want)
			break
		}
	}
}

func TestQueryLSPCIFailures(t *testing.T) {
	failing := execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
		return nil, execx.ErrNotInstalled
	})
	empty := execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
		return nil, nil
	})

	tests := []struct {
		name string
		run  execx.Runner
	}{
		{"nil runner", nil},
		{"not installed", failing},
		{"no match", empty},
		{"other error", execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := queryLSPCI(context.Background(), tt.run, "10de", ""); ok {
				t.Error("expected ok=false")
			}
		})
	}
}
