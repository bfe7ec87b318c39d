// Package sysfs discovers the PCIe hierarchy by walking the Linux sysfs
// device tree.
//
// # Layout
//
// Under /sys/devices every PCI host bridge appears as a container directory
// named pciDDDD:BB. Functions appear as directories named DDDD:BB:DD.F and
// a downstream function of a bridge is a subdirectory of the bridge's own
// directory, so the directory tree is the device tree:
//
//	/sys/devices/pci0000:00/
//	    0000:00:01.0/             bridge
//	        0000:01:00.0/         endpoint behind it
//	    0000:00:1f.3/
//
// # Walking
//
// [Walker.Walk] lists the root, keeps the container directories and hands
// each one to a bounded worker pool. A worker walks its container
// depth-first and sequentially, reading each function's attributes with
// [ReadNode]. Symlinks are never followed, which keeps the walk out of the
// subsystem and driver back-links that make sysfs cyclic.
//
// A directory that cannot be listed is logged and skipped. Its subtree is
// empty in the result. Only a root that cannot be listed fails the walk.
package sysfs
