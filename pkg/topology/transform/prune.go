package transform

import "github.com/matzehuels/pcietopo/pkg/topology"

// PruneChildless returns the roots that have at least one child, in their
// original order, and the number of roots dropped. A bare root carries no
// topology and only adds noise to a diagram.
func PruneChildless(roots []*topology.Node) ([]*topology.Node, int) {
	out := make([]*topology.Node, 0, len(roots))
	for _, r := range roots {
		if len(r.Children) > 0 {
			out = append(out, r)
		}
	}
	return out, len(roots) - len(out)
}
