package topology_test

import (
	"fmt"

	"github.com/matzehuels/pcietopo/pkg/topology"
)

func ExampleParseAddress() {
	addr, err := topology.ParseAddress("0000:3b:00.1")
	if err != nil {
		panic(err)
	}
	fmt.Println(addr.DevicePrefix(), addr.Function)
	// Output: 0000:3b:00 1
}

func ExampleSwitchClusters() {
	root := &topology.Node{Path: "/sys/devices/pci0000:00/0000:00:01.0", Class: "0x060400"}
	root.SetChildren([]*topology.Node{
		{Path: root.Path + "/0000:01:00.0", Class: "0x060400"},
		{Path: root.Path + "/0000:01:01.0", Class: "0x060400"},
	})

	for _, c := range topology.SwitchClusters(root) {
		fmt.Println(c.Name, len(c.Members))
	}
	// Output: switch__sys_devices_pci0000_00_0000_00_01_0 3
}
