// Package names resolves PCI vendor and device IDs to human-readable
// names.
//
// # Sources
//
// A [Resolver] consults its sources in order and stops at the first hit:
//
//  1. its in-memory map of names resolved during this run,
//  2. a known-devices JSON file maintained by the operator,
//  3. the pci.ids database shipped with pciutils/hwdata,
//  4. the persistent name cache (file or Redis),
//  5. lspci -vmm -d vendor:device.
//
// When every source misses, the raw ID (without "0x") is returned, so a
// label always has something to show.
//
// # Known Devices File
//
// The known-devices file overrides names for hardware missing from, or
// named unhelpfully in, pci.ids:
//
//	{
//	  "vendors": {"10de": "NVIDIA"},
//	  "devices": {"10de:2330": "H100 SXM5 80GB"}
//	}
//
// IDs are lower-case hex without the "0x" prefix.
package names
