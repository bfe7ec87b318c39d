package topology

import "strings"

// Class code prefixes recognised by the predicates below.
const (
	ClassBridge                = "0x0604"
	ClassNetwork               = "0x02"
	ClassEthernet              = "0x0200"
	ClassInfiniband            = "0x0207"
	Class3DController          = "0x0302"
	ClassOtherSystemPeripheral = "0x0880"
)

// NormalizeClass lower-cases a class code, trims surrounding space and adds
// the "0x" prefix when it is missing. An empty input stays empty.
func NormalizeClass(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return ""
	}
	if !strings.HasPrefix(c, "0x") {
		c = "0x" + c
	}
	return c
}

// HasClassPrefix reports whether code starts with prefix after both are
// normalized. An empty code never matches.
func HasClassPrefix(code, prefix string) bool {
	c := NormalizeClass(code)
	if c == "" {
		return false
	}
	return strings.HasPrefix(c, NormalizeClass(prefix))
}

func hasClass(n *Node, prefix string) bool {
	return n != nil && HasClassPrefix(n.Class, prefix)
}

// IsBridge reports whether n is a PCI-to-PCI bridge.
func IsBridge(n *Node) bool { return hasClass(n, ClassBridge) }

// IsNetworkClass reports whether n is any network controller.
func IsNetworkClass(n *Node) bool { return hasClass(n, ClassNetwork) }

// IsEthernetClass reports whether n is an Ethernet controller.
func IsEthernetClass(n *Node) bool { return hasClass(n, ClassEthernet) }

// IsInfinibandClass reports whether n is an InfiniBand controller.
func IsInfinibandClass(n *Node) bool { return hasClass(n, ClassInfiniband) }

// Is3DController reports whether n is a 3D controller (most datacenter GPUs).
func Is3DController(n *Node) bool { return hasClass(n, Class3DController) }

// IsOtherSystemPeripheral reports whether n is an "other system peripheral".
func IsOtherSystemPeripheral(n *Node) bool { return hasClass(n, ClassOtherSystemPeripheral) }

// IsSynthetic reports whether n is a multifunction grouping node, that is
// whether its path ends in the synthetic function marker.
func IsSynthetic(n *Node) bool {
	return n != nil && strings.HasSuffix(n.Path, SyntheticFunction)
}

// IsSwitch reports whether n is a bridge with more than one bridge child,
// the shape of a switch upstream port.
func IsSwitch(n *Node) bool {
	if !IsBridge(n) {
		return false
	}
	return len(BridgeChildren(n)) > 1
}

// IsMultifunctionSwitch reports whether n is a synthetic node grouping at
// least one bridge function with at least one endpoint function.
func IsMultifunctionSwitch(n *Node) bool {
	if !IsSynthetic(n) {
		return false
	}
	return len(BridgeChildren(n)) > 0 && len(NonBridgeChildren(n)) > 0
}

// BridgeChildren returns the direct children of n that are bridges.
func BridgeChildren(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if IsBridge(c) {
			out = append(out, c)
		}
	}
	return out
}

// NonBridgeChildren returns the direct children of n that are not bridges.
func NonBridgeChildren(n *Node) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !IsBridge(c) {
			out = append(out, c)
		}
	}
	return out
}
