package topology

// BreadthFirst visits every node of the tree rooted at root level by level,
// children in slice order. A nil root visits nothing.
func BreadthFirst(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visit(n)
		queue = append(queue, n.Children...)
	}
}

// Walk visits every node depth-first in pre-order together with its depth
// (0 for root). Returning false from visit skips the node's subtree.
func Walk(root *Node, visit func(n *Node, depth int) bool) {
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if !visit(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	if root != nil {
		walk(root, 0)
	}
}

// Count returns the number of nodes in the tree, synthetic ones included.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// CountForest sums [Count] over roots.
func CountForest(roots []*Node) int {
	total := 0
	for _, r := range roots {
		total += Count(r)
	}
	return total
}

// Paths returns the path of every node in the forest in pre-order.
func Paths(roots []*Node) []string {
	var out []string
	for _, r := range roots {
		Walk(r, func(n *Node, _ int) bool {
			out = append(out, n.Path)
			return true
		})
	}
	return out
}

// Find returns the node with the given path, or nil.
func Find(root *Node, path string) *Node {
	var found *Node
	Walk(root, func(n *Node, _ int) bool {
		if found != nil {
			return false
		}
		if n.Path == path {
			found = n
			return false
		}
		return true
	})
	return found
}

// Parent returns the node whose children include the node at path. It
// returns nil for the root itself and for paths not in the tree.
func Parent(root *Node, path string) *Node {
	var parent *Node
	Walk(root, func(n *Node, _ int) bool {
		if parent != nil {
			return false
		}
		for _, c := range n.Children {
			if c.Path == path {
				parent = n
				return false
			}
		}
		return true
	})
	return parent
}
