package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/pcietopo/pkg/topology"
)

// Attribute files read for every function directory.
const (
	AttrVendor           = "vendor"
	AttrDevice           = "device"
	AttrClass            = "class"
	AttrNUMANode         = "numa_node"
	AttrCurrentLinkSpeed = "current_link_speed"
	AttrMaxLinkSpeed     = "max_link_speed"
	AttrCurrentLinkWidth = "current_link_width"
	AttrMaxLinkWidth     = "max_link_width"
)

// ReadNode builds a node for the function directory at path. Each attribute
// is the trimmed content of its file. A file that is missing or unreadable
// leaves the field empty, and a numa_node that does not parse as an integer
// leaves NUMA nil. ReadNode never fails and does not read children.
func ReadNode(path string) *topology.Node {
	return &topology.Node{
		Path:             path,
		VendorID:         readAttr(path, AttrVendor),
		DeviceID:         readAttr(path, AttrDevice),
		Class:            readAttr(path, AttrClass),
		NUMA:             readInt(path, AttrNUMANode),
		CurrentLinkSpeed: readAttr(path, AttrCurrentLinkSpeed),
		MaxLinkSpeed:     readAttr(path, AttrMaxLinkSpeed),
		CurrentLinkWidth: readAttr(path, AttrCurrentLinkWidth),
		MaxLinkWidth:     readAttr(path, AttrMaxLinkWidth),
	}
}

func readAttr(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readInt(dir, name string) *int {
	s := readAttr(dir, name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
