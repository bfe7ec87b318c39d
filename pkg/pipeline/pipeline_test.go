package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/pcietopo/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"dot", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	if opts.Root != DefaultRoot {
		t.Errorf("Root = %q", opts.Root)
	}
	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers = %d", opts.Workers)
	}
	if opts.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v", opts.Timeout)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPDF {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q", opts.OutputDir)
	}
	if opts.Classes == nil || opts.Logger == nil {
		t.Error("Classes and Logger should be set")
	}

	// Defaults must not alias the package-level slice.
	opts.Formats[0] = "svg"
	if DefaultFormats[0] != FormatPDF {
		t.Error("SetDefaults aliased DefaultFormats")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"valid", Options{FilterClasses: []string{"3D controller"}, Formats: []string{"svg"}}, ""},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"blank filter", Options{FilterClasses: []string{" "}}, ""},
		{"control char filter", Options{FilterClasses: []string{"3D\x00controller"}}, errors.ErrCodeInvalidFilter},
		{"negative timeout", Options{Timeout: -time.Second}, errors.ErrCodeInvalidInput},
		{"traversal", Options{OutputDir: "../out"}, errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSetDefaultsCleansFilterClasses(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"blank only", []string{"", "   "}, nil},
		{"trim and drop", []string{" 3D controller ", "\t", "Ethernet controller"}, []string{"3D controller", "Ethernet controller"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{FilterClasses: tt.in}
			opts.SetDefaults()
			if !reflect.DeepEqual(opts.FilterClasses, tt.want) {
				t.Errorf("FilterClasses = %q, want %q", opts.FilterClasses, tt.want)
			}
		})
	}
}

func TestWantsFormat(t *testing.T) {
	opts := Options{Formats: []string{"svg", "json"}}
	if !opts.WantsFormat("json") || opts.WantsFormat("pdf") {
		t.Errorf("WantsFormat mismatch for %v", opts.Formats)
	}
}

func TestWriteArtifacts(t *testing.T) {
	res := &Result{
		Artifacts: map[string]map[string][]byte{
			"numa_0": {"svg": []byte("<svg/>"), "dot": []byte("digraph {}")},
			"numa_1": {"svg": []byte("<svg/>")},
		},
		Export: []byte("{}"),
	}
	res.Partitions = samplePartitions()

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := res.WriteArtifacts(dir)
	if err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}

	want := []string{"numa_0.dot", "numa_0.svg", "numa_1.svg", ExportName}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], name)
		}
		if _, err := os.Stat(paths[i]); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestWriteArtifactsRejectsTraversal(t *testing.T) {
	res := &Result{}
	if _, err := res.WriteArtifacts("../escape"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}
