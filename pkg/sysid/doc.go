// Package sysid cross-references PCI functions with the identifiers the
// rest of the system uses for them: network interface names, RDMA device
// names, NVMe controller names and NVIDIA GPU indices.
//
// A [Table] is loaded once per run from /sys/bus/pci/devices and
// nvidia-smi and is read-only afterwards. Every source is optional: a host
// without GPUs or without nvidia-smi simply yields an emptier table.
//
// # NVLink
//
// When GPU indices are known, [Load] also parses the connection matrix
// printed by "nvidia-smi topo -m" and records every NV<n> cell. The
// links are symmetric; [Table.NVLinks] lists each pair once.
package sysid
