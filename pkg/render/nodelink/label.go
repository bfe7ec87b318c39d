package nodelink

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/pcietopo/pkg/sysid"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

// Fill colors by device class. The first matching rule wins.
const (
	ColorOtherPeripheral = "antiquewhite4"
	ColorBridge          = "lightblue"
	Color3DController    = "green"
	ColorNetwork         = "aquamarine1"
	ColorDefault         = "white"
)

// NodeColor returns the fill color of n.
func NodeColor(n *topology.Node) string {
	switch {
	case topology.IsOtherSystemPeripheral(n):
		return ColorOtherPeripheral
	case topology.IsBridge(n):
		return ColorBridge
	case topology.Is3DController(n):
		return Color3DController
	case topology.IsNetworkClass(n):
		return ColorNetwork
	default:
		return ColorDefault
	}
}

// Label builds the text shown inside a node box. The first line is the
// address without its PCI domain; every other line is "key: value" and is
// left out when the value is unknown.
func Label(ctx context.Context, n *topology.Node, opts Options) string {
	lines := []string{topology.ShortName(n.Name())}
	add := func(key, value string) {
		if value != "" {
			lines = append(lines, key+": "+value)
		}
	}

	if n.VendorID != "" {
		add("vendor", vendorName(ctx, opts.Names, n.VendorID))
	}
	if n.DeviceID != "" {
		add("device", deviceName(ctx, opts.Names, n.VendorID, n.DeviceID))
	}
	if opts.Detailed && n.VendorID != "" && n.DeviceID != "" {
		add("id", trimHex(n.VendorID)+":"+trimHex(n.DeviceID))
	}

	var ids sysid.Identifiers
	if opts.Identifiers != nil {
		ids = opts.Identifiers.Lookup(n.Path)
	}
	add("iface", ids.Netdev)
	add("rdma", ids.RDMA)
	if ids.GPU != nil {
		add("GPU", fmt.Sprint(*ids.GPU))
	}
	add("nvme", ids.NVMe)

	add("curr_lnk_s", n.CurrentLinkSpeed)
	add("max_lnk_s", n.MaxLinkSpeed)
	add("curr_lnk_w", n.CurrentLinkWidth)
	add("max_lnk_w", n.MaxLinkWidth)
	if opts.Detailed && n.NUMA != nil {
		add("numa", fmt.Sprint(*n.NUMA))
	}
	if n.Class != "" {
		add("cls", classLabel(opts, n.Class))
	}
	return strings.Join(lines, "\n")
}

func vendorName(ctx context.Context, names NameResolver, id string) string {
	if names == nil {
		return trimHex(id)
	}
	return names.VendorName(ctx, id)
}

func deviceName(ctx context.Context, names NameResolver, vendor, device string) string {
	if names == nil {
		return trimHex(device)
	}
	return names.DeviceName(ctx, vendor, device)
}

func classLabel(opts Options, code string) string {
	if opts.Classes == nil {
		return code
	}
	label := opts.Classes.Label(code)
	if opts.Detailed {
		label += " (" + code + ")"
	}
	return label
}

func trimHex(id string) string {
	return strings.TrimPrefix(strings.ToLower(id), "0x")
}
