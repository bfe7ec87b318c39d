// Package transform rewrites a discovered PCIe forest into the shape that
// gets rendered.
//
// # Overview
//
// A raw forest from [sysfs.Walker] mirrors the directory tree one to one.
// The transforms in this package run after discovery, in this order:
//
//  1. [PruneChildless] drops roots that have nothing beneath them.
//  2. [GroupForest] (or [GroupMultifunction] per tree) wraps the functions
//     of each multifunction device in a synthetic parent.
//  3. [FilterByClass] keeps only trees that contain a device of a wanted
//     class.
//  4. [PartitionByNUMA] splits the surviving roots by NUMA node.
//
// # Multifunction Grouping
//
// Functions of one physical device share the DDDD:BB:DD part of their
// address and differ only in the function digit. Grouping runs bottom-up:
// a node's children are grouped only after each child's own subtree is
// final. Each set of two or more same-device siblings is replaced by one
// synthetic node whose path ends in ".x", placed where the first member
// was:
//
//	Before: bridge → [02.0, 02.1, 03.0]
//	After:  bridge → [02.x → [02.0, 02.1], 03.0]
//
// Every pass builds a new child slice and swaps it in. The children of a
// synthetic node are never regrouped, so running the pass again changes
// nothing.
//
// [sysfs.Walker]: https://pkg.go.dev/github.com/matzehuels/pcietopo/pkg/sysfs#Walker
package transform
