// Package topology provides the in-memory model of a PCIe hierarchy.
//
// # Overview
//
// A topology is a forest of [Node] values. Each root is a function found
// directly under a host-bridge container (pci0000:00, ...) and each node
// owns its downstream functions. Two kinds of nodes exist:
//
//   - Real nodes mirror a function directory in sysfs and carry the raw
//     attribute strings read from it (vendor, device, class, link state).
//   - Synthetic nodes are added by [transform.GroupMultifunction] to group
//     the functions of one multifunction device. Their path ends in ".x"
//     and they carry no attributes.
//
// The path is the node's identity. Render identifiers and cluster names
// are derived from it, never from object identity.
//
// # Classification
//
// Class predicates ([IsBridge], [IsNetworkClass], [Is3DController], ...)
// compare the raw class string against hex prefixes, case-insensitively
// and with the "0x" prefix optional. Structural predicates ([IsSwitch],
// [IsMultifunctionSwitch]) also look at the node's direct children.
//
// # Clusters
//
// [MultifunctionClusters], [SwitchClusters] and [MultifunctionSwitchClusters]
// walk a tree breadth-first and return the member sets the renderer draws
// as Graphviz cluster subgraphs.
//
// [transform.GroupMultifunction]: https://pkg.go.dev/github.com/matzehuels/pcietopo/pkg/topology/transform#GroupMultifunction
package topology
