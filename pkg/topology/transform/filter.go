package transform

import (
	"strings"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

// ClassSet is a set of normalized (trimmed, lower-case) class labels.
type ClassSet map[string]struct{}

// NewClassSet normalizes labels into a set. Blank labels are dropped.
func NewClassSet(labels []string) ClassSet {
	set := make(ClassSet, len(labels))
	for _, l := range labels {
		if k := normalizeLabel(l); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// Contains reports whether label, normalized, is in the set. The empty
// label is never contained.
func (s ClassSet) Contains(label string) bool {
	k := normalizeLabel(label)
	if k == "" {
		return false
	}
	_, ok := s[k]
	return ok
}

// ParseClassList splits a comma-separated list of class labels, trimming
// each entry and dropping empty ones: "a, ,b" gives ["a", "b"].
func ParseClassList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FilterByClass returns the roots whose tree contains at least one node
// whose class label is in targets. Labels are compared case-insensitively
// after trimming. An empty target list returns roots unchanged.
func FilterByClass(roots []*topology.Node, targets []string, labeler classdb.Labeler) []*topology.Node {
	set := NewClassSet(targets)
	if len(set) == 0 {
		return roots
	}
	var out []*topology.Node
	for _, r := range roots {
		if TreeContainsClass(r, set, labeler) {
			out = append(out, r)
		}
	}
	return out
}

// TreeContainsClass reports whether any node in the tree, root included,
// has a class label in set.
func TreeContainsClass(root *topology.Node, set ClassSet, labeler classdb.Labeler) bool {
	found := false
	topology.Walk(root, func(n *topology.Node, _ int) bool {
		if found {
			return false
		}
		if set.Contains(labeler.Label(n.Class)) {
			found = true
			return false
		}
		return true
	})
	return found
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
