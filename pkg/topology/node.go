package topology

import (
	"path/filepath"
	"strings"
)

// idReplacer maps path separators and address punctuation to underscores so
// a path can be used as a Graphviz identifier.
var idReplacer = strings.NewReplacer("/", "_", ":", "_", ".", "_", "-", "_")

// Node is one function in the PCIe hierarchy, or a synthetic grouping node.
//
// Attribute fields hold the trimmed contents of the matching sysfs file and
// are empty when the file was missing or unreadable. A synthetic node has
// every attribute empty.
type Node struct {
	Path     string // Unique filesystem-like path, the node's identity
	VendorID string // e.g. "0x10de"
	DeviceID string // e.g. "0x2330"
	Class    string // 24-bit class code, e.g. "0x030200"

	// NUMA is the numa_node attribute, nil when absent or unparsable.
	NUMA *int

	CurrentLinkSpeed string
	MaxLinkSpeed     string
	CurrentLinkWidth string
	MaxLinkWidth     string

	Children []*Node
}

// Name returns the last path element, e.g. "0000:3b:00.1".
func (n *Node) Name() string {
	return filepath.Base(n.Path)
}

// ID returns the render-safe identifier derived from the path.
// Two nodes with distinct paths get distinct IDs as long as the paths differ
// in more than the replaced punctuation, which holds for sysfs paths.
func (n *Node) ID() string {
	return RenderID(n.Path)
}

// IsSynthetic reports whether the node was added by multifunction grouping.
func (n *Node) IsSynthetic() bool {
	return IsSynthetic(n)
}

// HasNUMA reports whether a numa_node value was read for the node.
func (n *Node) HasNUMA() bool {
	return n.NUMA != nil
}

// SetChildren replaces the node's children with the given slice.
func (n *Node) SetChildren(children []*Node) {
	n.Children = children
}

// RenderID converts a path to a render-safe identifier by replacing
// "/", ":", "." and "-" with "_".
func RenderID(path string) string {
	return idReplacer.Replace(path)
}

// IntPtr returns a pointer to v. It is a convenience for building nodes
// with a NUMA value.
func IntPtr(v int) *int {
	return &v
}
