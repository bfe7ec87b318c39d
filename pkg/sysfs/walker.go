package sysfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pcietopo/pkg/errors"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

const (
	// DefaultRoot is the sysfs directory that holds the PCI host bridges.
	DefaultRoot = "/sys/devices"
	// DefaultWorkers bounds how many containers are walked at once.
	DefaultWorkers = 4

	containerPrefix = "pci"
)

var (
	containerPattern = regexp.MustCompile(`^pci[0-9a-fA-F]{4}:[0-9a-fA-F]{2}$`)
	functionPattern  = regexp.MustCompile(`^[0-9a-fA-F]{4}:[0-9a-fA-F]{2}:[0-1][0-9a-fA-F]\.[0-7]$`)
)

// IsContainerName reports whether name is a top-level host-bridge
// container such as "pci0000:00".
func IsContainerName(name string) bool { return containerPattern.MatchString(name) }

// IsFunctionName reports whether name is a PCI function such as
// "0000:3b:00.1".
func IsFunctionName(name string) bool { return functionPattern.MatchString(name) }

// Stats summarizes one walk.
type Stats struct {
	Containers int           // Containers found under the root
	Nodes      int           // Function directories read
	Errors     int           // Directories that could not be listed
	Duration   time.Duration // Wall time of the walk
}

// Result is the outcome of [Walker.Walk].
type Result struct {
	Roots []*topology.Node // Sorted by path
	Stats Stats
}

// Walker walks a sysfs device tree. It is safe to call Walk concurrently.
type Walker struct {
	root    string
	workers int
	logger  *log.Logger
}

// Option configures a [Walker].
type Option func(*Walker)

// WithWorkers sets the number of containers walked concurrently.
// Values below 1 select [DefaultWorkers].
func WithWorkers(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithLogger sets the logger used for skipped directories and progress.
func WithLogger(l *log.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWalker returns a walker rooted at root. An empty root selects
// [DefaultRoot].
func NewWalker(root string, opts ...Option) *Walker {
	if root == "" {
		root = DefaultRoot
	}
	w := &Walker{
		root:    root,
		workers: DefaultWorkers,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root returns the directory the walker starts from.
func (w *Walker) Root() string { return w.root }

// Walk discovers every function below the root and returns the forest of
// top-level functions sorted by path.
//
// If ctx is cancelled before all containers were walked, Walk returns the
// containers completed so far together with an error coded
// [errors.ErrCodeTimeout].
func (w *Walker) Walk(ctx context.Context) (*Result, error) {
	start := time.Now()

	containers, err := w.containers()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeScan, err, "list sysfs root %s", w.root)
	}

	results := make([][]*topology.Node, len(containers))
	counts := make([]scanCounts, len(containers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	for i, dir := range containers {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			s := &scanner{logger: w.logger}
			results[i] = s.explore(dir)
			counts[i] = s.counts
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Stats: Stats{Containers: len(containers)}}
	for i := range results {
		res.Roots = append(res.Roots, results[i]...)
		res.Stats.Nodes += counts[i].nodes
		res.Stats.Errors += counts[i].errors
	}
	slices.SortFunc(res.Roots, func(a, b *topology.Node) int {
		return strings.Compare(a.Path, b.Path)
	})
	res.Stats.Duration = time.Since(start)

	w.logger.Debug("sysfs walk finished",
		"root", w.root,
		"containers", res.Stats.Containers,
		"nodes", res.Stats.Nodes,
		"errors", res.Stats.Errors,
		"duration", res.Stats.Duration)

	if err := ctx.Err(); err != nil {
		return res, errors.Wrap(errors.ErrCodeTimeout, err, "sysfs walk interrupted after %s", res.Stats.Duration.Round(time.Millisecond))
	}
	return res, nil
}

// containers lists the host-bridge containers directly under the root.
func (w *Walker) containers() ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && IsContainerName(e.Name()) {
			out = append(out, filepath.Join(w.root, e.Name()))
		}
	}
	return out, nil
}

type scanCounts struct {
	nodes  int
	errors int
}

// scanner walks one container. It is owned by a single worker.
type scanner struct {
	logger *log.Logger
	counts scanCounts
}

// explore returns the function nodes found directly in dir, each with its
// subtree attached. Nested entries named pci* are descended into and their
// functions are returned as if they sat in dir.
func (s *scanner) explore(dir string) []*topology.Node {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn("skipping unreadable directory", "path", dir, "err", err)
		s.counts.errors++
		return nil
	}

	var nodes []*topology.Node
	for _, e := range entries {
		// DirEntry reports symlinks as non-directories.
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)
		switch {
		case IsFunctionName(name):
			n := ReadNode(path)
			n.Children = s.explore(path)
			s.counts.nodes++
			nodes = append(nodes, n)
		case strings.HasPrefix(name, containerPrefix):
			nodes = append(nodes, s.explore(path)...)
		}
	}
	return nodes
}
