package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pcietopo/pkg/errors"
	pcio "github.com/matzehuels/pcietopo/pkg/io"
	"github.com/matzehuels/pcietopo/pkg/observability"
	"github.com/matzehuels/pcietopo/pkg/sysfs"
	"github.com/matzehuels/pcietopo/pkg/topology"
	"github.com/matzehuels/pcietopo/pkg/topology/transform"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewRunner creates a runner. A nil logger selects log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, now: time.Now}
}

// Execute runs the complete pipeline and renders every partition in every
// requested format. Nothing is written to disk; see [Result.WriteArtifacts].
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result, err := r.Assemble(ctx, opts)
	if err != nil {
		return nil, err
	}
	if result.NoMatch {
		return result, nil
	}

	renderStart := time.Now()
	for _, part := range result.Partitions {
		artifacts, err := RenderPartition(ctx, part, opts)
		if err != nil {
			return nil, err
		}
		if len(artifacts) > 0 {
			result.Artifacts[part.Name()] = artifacts
		}
	}

	if opts.WantsFormat(FormatJSON) {
		var buf bytes.Buffer
		if err := pcio.WriteJSON(r.snapshot(result, opts), &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "export JSON")
		}
		result.Export = buf.Bytes()
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"partitions", len(result.Partitions),
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Assemble runs every stage except rendering: walk, prune, group, filter
// and partition.
func (r *Runner) Assemble(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Root:      opts.Root,
		Artifacts: make(map[string]map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Walk
	roots, err := r.walk(ctx, opts, result)
	if err != nil {
		return nil, err
	}
	logger.Info("scanned sysfs",
		"root", opts.Root,
		"containers", result.Stats.Containers,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.ScanTime)
	if result.Stats.ScanErrors > 0 {
		logger.Warn("some sysfs directories could not be read", "count", result.Stats.ScanErrors)
	}

	// Stage 2: Prune
	roots, result.Stats.RootsPruned = transform.PruneChildless(roots)
	logger.Debug("pruned childless roots", "pruned", result.Stats.RootsPruned, "remaining", len(roots))

	// Stage 3: Group
	groupStart := time.Now()
	roots, group, err := transform.GroupForest(roots)
	result.Stats.GroupTime = time.Since(groupStart)
	observability.Pipeline().OnGroupComplete(ctx, group.SyntheticAdded, result.Stats.GroupTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.SyntheticAdded = group.SyntheticAdded
	result.Stats.NodesAbsorbed = group.NodesAbsorbed
	logger.Debug("grouped multifunction devices",
		"synthetic", group.SyntheticAdded,
		"absorbed", group.NodesAbsorbed,
		"duration", result.Stats.GroupTime)

	// Stage 4: Filter
	if len(opts.FilterClasses) > 0 {
		filterStart := time.Now()
		before := len(roots)
		roots = transform.FilterByClass(roots, opts.FilterClasses, opts.Classes)
		result.Stats.FilterTime = time.Since(filterStart)
		result.Stats.RootsFiltered = before - len(roots)
		observability.Pipeline().OnFilterComplete(ctx, len(roots), result.Stats.RootsFiltered)
		logger.Info("filtered trees",
			"classes", opts.FilterClasses,
			"kept", len(roots),
			"dropped", result.Stats.RootsFiltered)
	}
	result.Roots = roots

	// Stage 5: Partition
	result.Partitions, result.Unassigned = transform.PartitionByNUMA(roots)
	if len(result.Unassigned) > 0 {
		logger.Debug("roots without NUMA affinity left out of partitions", "count", len(result.Unassigned))
	}
	if len(roots) == 0 {
		result.NoMatch = true
		logger.Warn("no PCIe trees matched", "classes", opts.FilterClasses)
	}
	return result, nil
}

func (r *Runner) walk(ctx context.Context, opts Options, result *Result) ([]*topology.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	observability.Pipeline().OnScanStart(ctx, opts.Root)
	walker := sysfs.NewWalker(opts.Root,
		sysfs.WithWorkers(opts.Workers),
		sysfs.WithLogger(opts.Logger))
	res, err := walker.Walk(ctx)

	nodes := 0
	if res != nil {
		nodes = res.Stats.Nodes
		result.Stats.Containers = res.Stats.Containers
		result.Stats.NodeCount = res.Stats.Nodes
		result.Stats.ScanErrors = res.Stats.Errors
		result.Stats.ScanTime = res.Stats.Duration
	}
	observability.Pipeline().OnScanComplete(ctx, opts.Root, nodes, result.Stats.ScanTime, err)
	if err != nil {
		return nil, err
	}
	return res.Roots, nil
}

// snapshot returns the JSON export input for a result.
func (r *Runner) snapshot(result *Result, opts Options) pcio.Snapshot {
	return pcio.Snapshot{
		RunID:       result.RunID,
		Root:        result.Root,
		GeneratedAt: r.clock(),
		Partitions:  result.Partitions,
		Unassigned:  result.Unassigned,
		Classes:     opts.Classes,
	}
}

func (r *Runner) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
