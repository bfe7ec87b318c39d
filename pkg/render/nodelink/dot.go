package nodelink

import (
	"context"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/sysid"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

// NameResolver turns vendor and device IDs into display names.
// [*names.Resolver] implements it.
//
// [*names.Resolver]: github.com/matzehuels/pcietopo/pkg/names#Resolver
type NameResolver interface {
	VendorName(ctx context.Context, vendorID string) string
	DeviceName(ctx context.Context, vendorID, deviceID string) string
}

// IdentifierSource maps sysfs paths to system identifiers.
// [*sysid.Table] implements it.
type IdentifierSource interface {
	Lookup(path string) sysid.Identifiers
	NVLinks() []sysid.Link
}

// Options configures diagram generation. All collaborators are optional;
// without them labels show raw IDs and class codes.
type Options struct {
	// Detailed adds raw IDs, the NUMA node and the class code to labels.
	Detailed bool

	Names       NameResolver
	Classes     classdb.Labeler
	Identifiers IdentifierSource
}

// Cluster fill colors.
const (
	ClusterColorSwitch        = "lightblue"
	ClusterColorMultifunction = "yellow"
)

// ToDOT converts one NUMA partition to Graphviz DOT. name becomes the graph
// name and should be the partition name ("numa_0").
//
// Every node is drawn as a filled box colored by class, with an edge to
// each child. Multifunction switches, switches and multifunction devices
// are wrapped in cluster subgraphs, in that order. NVLink connections
// between GPUs of the partition are drawn as dashed undirected edges.
func ToDOT(ctx context.Context, name string, roots []*topology.Node, opts Options) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr(name, "compound", "true"); err != nil {
		return "", err
	}

	b := builder{g: g, graph: name, ctx: ctx, opts: opts}
	for _, r := range roots {
		b.tree(r)
	}
	for _, r := range roots {
		b.clusters(topology.MultifunctionSwitchClusters(r), ClusterColorSwitch)
	}
	for _, r := range roots {
		b.clusters(topology.SwitchClusters(r), ClusterColorSwitch)
	}
	for _, r := range roots {
		b.clusters(topology.MultifunctionClusters(r), ClusterColorMultifunction)
	}
	b.nvlinks(roots)

	if b.err != nil {
		return "", fmt.Errorf("build DOT for %s: %w", name, b.err)
	}
	return g.String(), nil
}

type builder struct {
	g     *gographviz.Graph
	graph string
	ctx   context.Context
	opts  Options
	err   error
}

func (b *builder) check(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) tree(n *topology.Node) {
	b.check(b.g.AddNode(b.graph, n.ID(), map[string]string{
		"label":     strconv.Quote(Label(b.ctx, n, b.opts)),
		"style":     "filled",
		"fillcolor": NodeColor(n),
	}))
	for _, c := range n.Children {
		b.check(b.g.AddEdge(n.ID(), c.ID(), true, nil))
		b.tree(c)
	}
}

// clusters adds one subgraph per cluster. Graphviz only draws subgraphs
// whose name starts with "cluster" as boxes.
func (b *builder) clusters(cs []topology.Cluster, color string) {
	for _, c := range cs {
		sub := "cluster_" + c.Name
		b.check(b.g.AddSubGraph(b.graph, sub, map[string]string{
			"label":    strconv.Quote(c.Name),
			"style":    "filled",
			"color":    color,
			"pencolor": "black",
		}))
		for _, id := range c.Members {
			b.check(b.g.AddNode(sub, id, nil))
		}
	}
}

func (b *builder) nvlinks(roots []*topology.Node) {
	if b.opts.Identifiers == nil {
		return
	}
	links := b.opts.Identifiers.NVLinks()
	if len(links) == 0 {
		return
	}

	gpus := make(map[int]string)
	for _, r := range roots {
		topology.BreadthFirst(r, func(n *topology.Node) {
			if n.IsSynthetic() {
				return
			}
			id := b.opts.Identifiers.Lookup(n.Path)
			if id.GPU == nil {
				return
			}
			if _, seen := gpus[*id.GPU]; !seen {
				gpus[*id.GPU] = n.ID()
			}
		})
	}

	for _, l := range links {
		a, okA := gpus[l.A]
		c, okB := gpus[l.B]
		if !okA || !okB {
			continue
		}
		b.check(b.g.AddEdge(a, c, true, map[string]string{
			"dir":   "none",
			"style": "dashed",
			"label": strconv.Quote(l.Type),
		}))
	}
}
