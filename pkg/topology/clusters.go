package topology

// ClusterKind identifies which query produced a [Cluster].
type ClusterKind string

const (
	ClusterMultifunction       ClusterKind = "multifunction"
	ClusterSwitch              ClusterKind = "switch"
	ClusterMultifunctionSwitch ClusterKind = "mf_switch"
)

// Cluster is a named set of render IDs drawn as one Graphviz subgraph.
type Cluster struct {
	Name    string
	Kind    ClusterKind
	Members []string // render IDs, first member is the cluster's anchor node
}

// MultifunctionClusters returns one cluster per synthetic node in the tree:
// the synthetic node and all of its children. Name is "mf_cluster_<id>".
func MultifunctionClusters(root *Node) []Cluster {
	var out []Cluster
	BreadthFirst(root, func(n *Node) {
		if !IsSynthetic(n) {
			return
		}
		members := []string{n.ID()}
		for _, c := range n.Children {
			members = append(members, c.ID())
		}
		out = append(out, Cluster{Name: "mf_cluster_" + n.ID(), Kind: ClusterMultifunction, Members: members})
	})
	return out
}

// SwitchClusters returns one cluster per switch in the tree: the switch
// node and its bridge children. Name is "switch_<id>".
func SwitchClusters(root *Node) []Cluster {
	var out []Cluster
	BreadthFirst(root, func(n *Node) {
		if !IsSwitch(n) {
			return
		}
		members := []string{n.ID()}
		for _, b := range BridgeChildren(n) {
			members = append(members, b.ID())
		}
		out = append(out, Cluster{Name: "switch_" + n.ID(), Kind: ClusterSwitch, Members: members})
	})
	return out
}

// MultifunctionSwitchClusters returns one cluster per multifunction switch:
// the synthetic node, each bridge child followed by that bridge's children,
// and then the non-bridge children. Name is "mf_switch_<id>".
func MultifunctionSwitchClusters(root *Node) []Cluster {
	var out []Cluster
	BreadthFirst(root, func(n *Node) {
		if !IsMultifunctionSwitch(n) {
			return
		}
		members := []string{n.ID()}
		for _, b := range BridgeChildren(n) {
			members = append(members, b.ID())
			for _, c := range b.Children {
				members = append(members, c.ID())
			}
		}
		for _, c := range NonBridgeChildren(n) {
			members = append(members, c.ID())
		}
		out = append(out, Cluster{Name: "mf_switch_" + n.ID(), Kind: ClusterMultifunctionSwitch, Members: members})
	})
	return out
}
