// Package pkg provides the libraries behind pcietopo, a PCIe topology
// discovery and rendering tool.
//
// # Overview
//
// pcietopo rebuilds the bus/device/function hierarchy of a Linux host from
// sysfs, regroups it for readability and draws one Graphviz diagram per
// NUMA node. The pkg directory is organized as:
//
//  1. [topology] - Node model, classifier predicates, cluster queries
//  2. [topology/transform] - Grouping, pruning, class filter, NUMA partitions
//  3. [sysfs] - Concurrent sysfs walker
//  4. [classdb], [names], [sysid] - Labels, vendor/device names, system identifiers
//  5. [render/nodelink], [render] - DOT generation and SVG/PNG/PDF output
//  6. [pipeline] - Orchestration (walk → group → filter → partition → render)
//  7. [cache], [config], [errors], [observability], [io] - Supporting packages
//
// # Architecture
//
// The typical data flow:
//
//	/sys/devices
//	     ↓
//	[sysfs] walker (one task per host bridge)
//	     ↓
//	[topology/transform] prune → group → filter → partition
//	     ↓
//	[render/nodelink] DOT per NUMA node (+ names, classes, identifiers)
//	     ↓
//	SVG/PNG/PDF/DOT per partition, topology.json export
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/pcietopo/pkg/names"
//	    "github.com/matzehuels/pcietopo/pkg/pipeline"
//	    "github.com/matzehuels/pcietopo/pkg/sysid"
//	)
//
//	ctx := context.Background()
//	result, err := pipeline.NewRunner(nil).Execute(ctx, pipeline.Options{
//	    FilterClasses: []string{"3D controller"},
//	    Formats:       []string{"svg"},
//	    Names:         names.New(),
//	    Identifiers:   sysid.Load(ctx),
//	})
//	if err != nil {
//	    return err
//	}
//	paths, err := result.WriteArtifacts("out")
//
// [topology]: github.com/matzehuels/pcietopo/pkg/topology
// [topology/transform]: github.com/matzehuels/pcietopo/pkg/topology/transform
// [sysfs]: github.com/matzehuels/pcietopo/pkg/sysfs
// [classdb]: github.com/matzehuels/pcietopo/pkg/classdb
// [names]: github.com/matzehuels/pcietopo/pkg/names
// [sysid]: github.com/matzehuels/pcietopo/pkg/sysid
// [render/nodelink]: github.com/matzehuels/pcietopo/pkg/render/nodelink
// [render]: github.com/matzehuels/pcietopo/pkg/render
// [pipeline]: github.com/matzehuels/pcietopo/pkg/pipeline
// [cache]: github.com/matzehuels/pcietopo/pkg/cache
// [config]: github.com/matzehuels/pcietopo/pkg/config
// [errors]: github.com/matzehuels/pcietopo/pkg/errors
// [observability]: github.com/matzehuels/pcietopo/pkg/observability
// [io]: github.com/matzehuels/pcietopo/pkg/io
package pkg
