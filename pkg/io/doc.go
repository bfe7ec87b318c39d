// Package io exports a finalized PCIe topology as JSON.
//
// # Overview
//
// The export is the machine-readable twin of the rendered diagrams: the
// same NUMA partitions, the same grouped trees, the same render IDs. It is
// written next to the diagrams as topology.json when the "json" format is
// requested, and printed by "pcietopo scan --json".
//
// # JSON Format
//
//	{
//	  "version": 1,
//	  "run_id": "6f1c...",
//	  "sysfs_root": "/sys/devices",
//	  "partitions": [
//	    {
//	      "name": "numa_0",
//	      "numa": 0,
//	      "roots": [
//	        {
//	          "id": "_sys_devices_pci0000_00_0000_00_01_0",
//	          "path": "/sys/devices/pci0000:00/0000:00:01.0",
//	          "vendor": "0x8086",
//	          "device": "0x347a",
//	          "class": "0x060400",
//	          "class_label": "PCI-to-PCI bridge",
//	          "numa": 0,
//	          "link": {"speed": "16.0 GT/s PCIe", "width": "16"},
//	          "children": [...]
//	        }
//	      ]
//	    }
//	  ],
//	  "unassigned": [...]
//	}
//
// # Node Fields
//
//   - id: render-safe identifier, unique within the document
//   - path: sysfs path; synthetic nodes end in ".x"
//   - synthetic: true for multifunction grouping nodes
//   - vendor, device, class: raw sysfs values, omitted when absent
//   - class_label: resolved class name
//   - numa: NUMA node, omitted when unknown
//   - link: current and maximum link speed and width, omitted when unknown
//
// Roots whose NUMA node could not be read are listed under "unassigned".
package io
