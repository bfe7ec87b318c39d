package sysid

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

// DefaultDevicesDir is the flat per-function view of the PCI bus.
const DefaultDevicesDir = "/sys/bus/pci/devices"

// Subdirectories of a function directory that name its system devices.
const (
	dirNet        = "net"
	dirInfiniband = "infiniband"
	dirNVMe       = "nvme"
)

// Identifiers are the system names attached to one PCI function.
type Identifiers struct {
	Netdev string
	RDMA   string
	NVMe   string
	GPU    *int
}

// IsZero reports whether no identifier is set.
func (id Identifiers) IsZero() bool {
	return id.Netdev == "" && id.RDMA == "" && id.NVMe == "" && id.GPU == nil
}

// Link is an NVLink connection between two GPUs. A is always the lower
// index.
type Link struct {
	A, B int
	Type string
}

// Table maps PCI addresses to system identifiers.
type Table struct {
	netdev  map[string]string
	rdma    map[string]string
	nvme    map[string]string
	gpus    map[string]int
	nvlinks map[int]map[int]string
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{
		netdev:  make(map[string]string),
		rdma:    make(map[string]string),
		nvme:    make(map[string]string),
		gpus:    make(map[string]int),
		nvlinks: make(map[int]map[int]string),
	}
}

type loader struct {
	dir    string
	run    execx.Runner
	logger *log.Logger
}

// Option configures [Load].
type Option func(*loader)

// WithDevicesDir overrides [DefaultDevicesDir].
func WithDevicesDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithRunner sets the runner used for nvidia-smi. A nil runner skips GPU
// discovery.
func WithRunner(run execx.Runner) Option {
	return func(l *loader) { l.run = run }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Load builds a table from sysfs and nvidia-smi. It never fails: sources
// that cannot be read are logged at debug level and contribute nothing.
func Load(ctx context.Context, opts ...Option) *Table {
	l := &loader{
		dir:    DefaultDevicesDir,
		run:    execx.Exec{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	t := Empty()
	l.readDevices(t)
	if l.run == nil {
		return t
	}

	out, err := l.run.Run(ctx, nil, "nvidia-smi", gpuQueryArgs...)
	if err != nil {
		l.logger.Debug("gpu index query skipped", "err", err)
		return t
	}
	t.gpus = ParseGPUList(out)
	if len(t.gpus) == 0 {
		return t
	}

	out, err = l.run.Run(ctx, nil, "nvidia-smi", topoArgs...)
	if err != nil {
		l.logger.Debug("nvlink matrix query skipped", "err", err)
		return t
	}
	t.nvlinks = ParseTopoMatrix(out)
	return t
}

func (l *loader) readDevices(t *Table) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Debug("pci device list unreadable", "dir", l.dir, "err", err)
		return
	}
	for _, e := range entries {
		addr := normalizeAddress(e.Name())
		fn := filepath.Join(l.dir, e.Name())
		if name := firstEntry(filepath.Join(fn, dirNet)); name != "" {
			t.netdev[addr] = name
		}
		if name := firstEntry(filepath.Join(fn, dirInfiniband)); name != "" {
			t.rdma[addr] = name
		}
		if name := firstEntry(filepath.Join(fn, dirNVMe)); name != "" {
			t.nvme[addr] = name
		}
	}
}

// firstEntry returns the lexically first entry of dir, or "".
func firstEntry(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return ""
	}
	return entries[0].Name()
}

// Lookup returns the identifiers of the function named by path. A GPU
// index registered on function 0 also applies to the other functions of
// the same device.
func (t *Table) Lookup(path string) Identifiers {
	addr, ok := ExtractAddress(path)
	if !ok || t == nil {
		return Identifiers{}
	}
	id := Identifiers{
		Netdev: t.netdev[addr],
		RDMA:   t.rdma[addr],
		NVMe:   t.nvme[addr],
	}
	if n, ok := t.GPUIndex(path); ok {
		id.GPU = &n
	}
	return id
}

// GPUIndex returns the GPU index of the function named by path.
func (t *Table) GPUIndex(path string) (int, bool) {
	addr, ok := ExtractAddress(path)
	if !ok || t == nil {
		return 0, false
	}
	if n, ok := t.gpus[addr]; ok {
		return n, true
	}
	n, ok := t.gpus[functionZero(addr)]
	return n, ok
}

// GPUs returns the known GPU indices in ascending order.
func (t *Table) GPUs() []int {
	if t == nil {
		return nil
	}
	out := make([]int, 0, len(t.gpus))
	for _, n := range t.gpus {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// HasNVLink reports whether any NVLink connection is known.
func (t *Table) HasNVLink() bool {
	if t == nil {
		return false
	}
	for _, peers := range t.nvlinks {
		if len(peers) > 0 {
			return true
		}
	}
	return false
}

// NVLinks returns every connection once, ordered by (A, B).
func (t *Table) NVLinks() []Link {
	if t == nil {
		return nil
	}
	var links []Link
	for a, peers := range t.nvlinks {
		for b, kind := range peers {
			if a < b {
				links = append(links, Link{A: a, B: b, Type: kind})
			}
		}
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].A != links[j].A {
			return links[i].A < links[j].A
		}
		return links[i].B < links[j].B
	})
	return links
}
