// Package nodelink renders PCIe topology partitions as Graphviz node-link
// diagrams.
//
// # Usage
//
// Convert the roots of one NUMA partition to DOT, then render it:
//
//	dot, err := nodelink.ToDOT(ctx, "numa_0", roots, nodelink.Options{
//		Names:       resolver,
//		Classes:     classdb.New(),
//		Identifiers: table,
//	})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// PDF output goes through rsvg-convert:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot, render.Converter{})
//
// # Diagram
//
// Each device is a filled box whose color follows its class ([NodeColor])
// and whose text is built by [Label]. Edges point from parent to child.
// Clusters from [topology.MultifunctionSwitchClusters],
// [topology.SwitchClusters] and [topology.MultifunctionClusters] become
// "cluster_" subgraphs. NVLink connections reported by the identifier
// source are dashed, undirected and labelled with the link type.
//
// # Dependencies
//
// DOT is assembled with [github.com/awalterschulze/gographviz] and rendered
// in-process with [github.com/goccy/go-graphviz]. PDF conversion requires
// librsvg (rsvg-convert).
package nodelink
