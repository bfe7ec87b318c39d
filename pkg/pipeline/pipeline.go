// Package pipeline assembles the PCIe topology of a host and renders it.
//
// This package implements the complete walk → group → filter → partition →
// render pipeline used by the CLI. Centralizing it keeps the "render" and
// "scan" commands consistent.
//
// # Architecture
//
// The pipeline consists of these stages:
//
//  1. Walk: discover every function below the sysfs root ([sysfs.Walker])
//  2. Prune: drop roots with no children
//  3. Group: add synthetic multifunction nodes ([transform.GroupForest])
//  4. Filter: keep trees containing a requested class ([transform.FilterByClass])
//  5. Partition: split roots by NUMA node ([transform.PartitionByNUMA])
//  6. Render: build DOT per partition and render every requested format
//
// Stages 1 to 5 are [Runner.Assemble]; [Runner.Execute] adds stage 6.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    FilterClasses: []string{"3D controller"},
//	    Formats:       []string{"svg", "json"},
//	    Names:         resolver,
//	    Identifiers:   table,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := result.WriteArtifacts("out")
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/errors"
	"github.com/matzehuels/pcietopo/pkg/render"
	"github.com/matzehuels/pcietopo/pkg/render/nodelink"
	"github.com/matzehuels/pcietopo/pkg/sysfs"
	"github.com/matzehuels/pcietopo/pkg/topology"
	"github.com/matzehuels/pcietopo/pkg/topology/transform"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and config
// =============================================================================

const (
	// DefaultRoot is the sysfs directory walked for PCI host bridges.
	DefaultRoot = sysfs.DefaultRoot

	// DefaultWorkers is the number of containers walked in parallel.
	DefaultWorkers = sysfs.DefaultWorkers

	// DefaultTimeout bounds the sysfs walk.
	DefaultTimeout = 30 * time.Second

	// DefaultOutputDir is where artifacts are written.
	DefaultOutputDir = "."
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ExportName is the file name of the JSON export.
const ExportName = "topology.json"

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{FormatPDF}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Walk options
	Root    string
	Workers int
	Timeout time.Duration

	// FilterClasses are class labels; trees without a matching node are
	// dropped. Empty means no filtering.
	FilterClasses []string

	// Render options
	Formats   []string
	OutputDir string
	Detailed  bool

	// Collaborators. Classes defaults to the built-in class table and
	// Converter to rsvg-convert; Names and Identifiers may stay nil.
	Classes     classdb.Labeler
	Names       nodelink.NameResolver
	Identifiers nodelink.IdentifierSource
	Converter   render.Converter

	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and in the JSON export.
	RunID string

	// Root is the sysfs directory that was walked.
	Root string

	// Roots is the finalized forest: pruned, grouped and filtered.
	Roots []*topology.Node

	// Partitions groups Roots by NUMA node; Unassigned holds the roots
	// without a NUMA value.
	Partitions []transform.Partition
	Unassigned []*topology.Node

	// NoMatch is set when no tree survived; this is not an error.
	NoMatch bool

	// Artifacts holds rendered outputs keyed by partition name, then format.
	Artifacts map[string]map[string][]byte

	// Export is the JSON export when the json format was requested.
	Export []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Containers     int
	NodeCount      int
	ScanErrors     int
	RootsPruned    int
	SyntheticAdded int
	NodesAbsorbed  int
	RootsFiltered  int

	ScanTime   time.Duration
	GroupTime  time.Duration
	FilterTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero fields with their defaults.
func (o *Options) SetDefaults() {
	o.FilterClasses = cleanClassList(o.FilterClasses)
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Classes == nil {
		o.Classes = classdb.New()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// cleanClassList trims every label and drops blank ones. An all-blank list
// becomes nil, which disables filtering.
func cleanClassList(labels []string) []string {
	var out []string
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Validate checks the options without changing them.
func (o *Options) Validate() error {
	if err := errors.ValidateRoot(o.Root); err != nil {
		return err
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout cannot be negative")
	}
	for _, c := range o.FilterClasses {
		if err := errors.ValidateClassToken(c); err != nil {
			return fmt.Errorf("filter %q: %w", c, err)
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateOutputDir(o.OutputDir)
}

// NodelinkOptions returns the renderer options for this run.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{
		Detailed:    o.Detailed,
		Names:       o.Names,
		Classes:     o.Classes,
		Identifiers: o.Identifiers,
	}
}

// WantsFormat reports whether format was requested.
func (o *Options) WantsFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
