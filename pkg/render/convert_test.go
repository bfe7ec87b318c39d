package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

func TestConverter(t *testing.T) {
	svg := []byte("<svg/>")

	var gotArgs []string
	var gotStdin []byte
	c := Converter{Runner: execx.RunnerFunc(func(_ context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
		gotStdin = stdin
		gotArgs = append([]string{name}, args...)
		return []byte("converted"), nil
	})}

	tests := []struct {
		name string
		fn   func() ([]byte, error)
		args string
	}{
		{"pdf", func() ([]byte, error) { return c.ToPDF(context.Background(), svg) }, "rsvg-convert -f pdf"},
		{"png", func() ([]byte, error) { return c.ToPNG(context.Background(), svg, 2) }, "rsvg-convert -f png -z 2.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.fn()
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			if string(out) != "converted" {
				t.Errorf("out = %q", out)
			}
			if got := strings.Join(gotArgs, " "); got != tt.args {
				t.Errorf("args = %q, want %q", got, tt.args)
			}
			if !bytes.Equal(gotStdin, svg) {
				t.Errorf("stdin = %q, want %q", gotStdin, svg)
			}
		})
	}
}

func TestConverterMissingTool(t *testing.T) {
	c := Converter{Runner: execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
		return nil, execx.ErrNotInstalled
	})}
	_, err := c.ToPDF(context.Background(), []byte("<svg/>"))
	if err == nil || !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("err = %v, want install hint", err)
	}
}

func TestConverterFailure(t *testing.T) {
	boom := errors.New("rsvg-convert: exit status 1: bad svg")
	c := Converter{Runner: execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
		return nil, boom
	})}
	if _, err := c.ToPNG(context.Background(), nil, 1); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
