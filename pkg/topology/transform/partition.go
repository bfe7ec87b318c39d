package transform

import (
	"fmt"
	"slices"

	"github.com/matzehuels/pcietopo/pkg/topology"
)

// Partition is the set of roots attached to one NUMA node.
type Partition struct {
	NUMA  int
	Roots []*topology.Node
}

// Name returns the partition's group identifier, e.g. "numa_0".
func (p Partition) Name() string {
	return fmt.Sprintf("numa_%d", p.NUMA)
}

// PartitionByNUMA groups roots by their NUMA node, sorted by node number
// with roots kept in input order. A value of -1 (no affinity reported) is
// a partition of its own. Roots without a NUMA value are returned
// separately as unassigned.
//
// A synthetic root takes the NUMA node of its first member that has one.
func PartitionByNUMA(roots []*topology.Node) (parts []Partition, unassigned []*topology.Node) {
	index := make(map[int]int)
	for _, r := range roots {
		numa, ok := rootNUMA(r)
		if !ok {
			unassigned = append(unassigned, r)
			continue
		}
		i, seen := index[numa]
		if !seen {
			i = len(parts)
			index[numa] = i
			parts = append(parts, Partition{NUMA: numa})
		}
		parts[i].Roots = append(parts[i].Roots, r)
	}
	slices.SortFunc(parts, func(a, b Partition) int { return a.NUMA - b.NUMA })
	return parts, unassigned
}

func rootNUMA(n *topology.Node) (int, bool) {
	if n.NUMA != nil {
		return *n.NUMA, true
	}
	if n.IsSynthetic() {
		for _, c := range n.Children {
			if c.NUMA != nil {
				return *c.NUMA, true
			}
		}
	}
	return 0, false
}
