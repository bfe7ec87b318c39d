package transform

import (
	"path/filepath"

	"github.com/matzehuels/pcietopo/pkg/errors"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

// GroupResult reports what a grouping pass changed.
type GroupResult struct {
	// SyntheticAdded is the number of synthetic nodes inserted.
	SyntheticAdded int

	// NodesAbsorbed is the number of nodes moved under a synthetic parent.
	// Each absorbed node belongs to exactly one synthetic node.
	NodesAbsorbed int
}

// Add accumulates another result into r.
func (r *GroupResult) Add(other GroupResult) {
	r.SyntheticAdded += other.SyntheticAdded
	r.NodesAbsorbed += other.NodesAbsorbed
}

// GroupMultifunction groups the multifunction devices in the tree rooted at
// root, in place. The root itself is never wrapped.
//
// If a synthetic path would collide with a path already in the tree, the
// pass stops with an [errors.ErrCodePathCollision] error. The parent being
// regrouped is left unchanged, but subtrees finished earlier keep their
// grouping.
func GroupMultifunction(root *topology.Node) (GroupResult, error) {
	g := newGrouper([]*topology.Node{root})
	err := g.group(root)
	return g.result, err
}

// GroupForest groups every tree in roots and then groups same-device roots
// that sit in the same container. It returns the new root slice; roots
// itself is not modified, though the trees it points to are.
func GroupForest(roots []*topology.Node) ([]*topology.Node, GroupResult, error) {
	g := newGrouper(roots)
	for _, r := range roots {
		if err := g.group(r); err != nil {
			return roots, g.result, err
		}
	}
	out, err := g.regroup(roots)
	if err != nil {
		return roots, g.result, err
	}
	return out, g.result, nil
}

type grouper struct {
	paths  map[string]struct{}
	result GroupResult
}

func newGrouper(roots []*topology.Node) *grouper {
	g := &grouper{paths: make(map[string]struct{})}
	for _, p := range topology.Paths(roots) {
		g.paths[p] = struct{}{}
	}
	return g
}

func (g *grouper) group(n *topology.Node) error {
	for _, c := range n.Children {
		if err := g.group(c); err != nil {
			return err
		}
	}
	if n.IsSynthetic() {
		return nil
	}
	children, err := g.regroup(n.Children)
	if err != nil {
		return err
	}
	n.SetChildren(children)
	return nil
}

// regroup returns a new sibling slice in which every same-device set of
// two or more siblings is replaced by a synthetic node at the position of
// its first member.
func (g *grouper) regroup(siblings []*topology.Node) ([]*topology.Node, error) {
	sets := make(map[string][]*topology.Node)
	for _, s := range siblings {
		if key, ok := siblingKey(s); ok {
			sets[key] = append(sets[key], s)
		}
	}

	out := make([]*topology.Node, 0, len(siblings))
	emitted := make(map[string]bool)
	var added []string
	var result GroupResult
	for _, s := range siblings {
		key, ok := siblingKey(s)
		if !ok || len(sets[key]) < 2 {
			out = append(out, s)
			continue
		}
		if emitted[key] {
			continue
		}
		emitted[key] = true

		members := sets[key]
		path := syntheticPath(members[0])
		if _, taken := g.paths[path]; taken {
			for _, p := range added {
				delete(g.paths, p)
			}
			return nil, errors.New(errors.ErrCodePathCollision,
				"synthetic node %s collides with an existing node", path)
		}
		g.paths[path] = struct{}{}
		added = append(added, path)

		out = append(out, &topology.Node{Path: path, Children: members})
		result.SyntheticAdded++
		result.NodesAbsorbed += len(members)
	}
	g.result.Add(result)
	return out, nil
}

// siblingKey identifies the physical device a node belongs to. Nodes in
// different directories never share a key.
func siblingKey(n *topology.Node) (string, bool) {
	prefix, ok := topology.DevicePrefix(n.Name())
	if !ok {
		return "", false
	}
	return filepath.Join(filepath.Dir(n.Path), prefix), true
}

func syntheticPath(first *topology.Node) string {
	prefix, _ := topology.DevicePrefix(first.Name())
	return filepath.Join(filepath.Dir(first.Path), prefix+"."+topology.SyntheticFunction)
}
