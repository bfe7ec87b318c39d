package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	pcio "github.com/matzehuels/pcietopo/pkg/io"
	"github.com/matzehuels/pcietopo/pkg/pipeline"
	"github.com/matzehuels/pcietopo/pkg/render/nodelink"
	"github.com/matzehuels/pcietopo/pkg/sysid"
	"github.com/matzehuels/pcietopo/pkg/topology"
)

// scanCommand creates the scan command, which prints the grouped topology
// without rendering it.
func (c *CLI) scanCommand() *cobra.Command {
	var flags renderFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print the grouped PCIe topology as a tree",
		Long: `Scan walks sysfs and prints every NUMA partition as a tree, with
synthetic multifunction nodes in place. --json prints the same export the
render command writes as topology.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg, opts, err := c.buildOptions(cmd, &flags)
			if err != nil {
				return err
			}

			svc, err := c.newServices(ctx, cfg, opts.Root, flags.noCache)
			if err != nil {
				return err
			}
			defer svc.Close()

			result, err := pipeline.NewRunner(c.Logger).Assemble(ctx, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeScanJSON(out, result, svc.classes, isTerminal(out))
			}
			if result.NoMatch {
				printWarning("No PCIe trees match %s", strings.Join(opts.FilterClasses, ", "))
				return nil
			}
			d := describer{names: svc.names, classes: svc.classes, ids: svc.ids}
			printTopology(ctx, out, result, d)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the JSON export instead of a tree")

	return cmd
}

// describer renders the one-line summary of a node used in scan trees.
type describer struct {
	names   nodelink.NameResolver
	classes classdb.Labeler
	ids     *sysid.Table
}

func (d describer) describe(ctx context.Context, n *topology.Node) string {
	name := topology.ShortName(n.Name())
	if n.IsSynthetic() {
		return StyleHighlight.Render(name) + " " + StyleDim.Render("(multifunction)")
	}

	parts := []string{StyleHighlight.Render(name)}
	if n.Class != "" {
		parts = append(parts, StyleValue.Render(d.classes.Label(n.Class)))
	}
	if d.names != nil && n.VendorID != "" {
		vendor := d.names.VendorName(ctx, n.VendorID)
		device := d.names.DeviceName(ctx, n.VendorID, n.DeviceID)
		parts = append(parts, StyleDim.Render(vendor+" "+device))
	}

	ids := d.ids.Lookup(n.Path)
	var extra []string
	if ids.Netdev != "" {
		extra = append(extra, "iface="+ids.Netdev)
	}
	if ids.RDMA != "" {
		extra = append(extra, "rdma="+ids.RDMA)
	}
	if ids.NVMe != "" {
		extra = append(extra, "nvme="+ids.NVMe)
	}
	if ids.GPU != nil {
		extra = append(extra, fmt.Sprintf("gpu=%d", *ids.GPU))
	}
	if len(extra) > 0 {
		parts = append(parts, StyleNumber.Render("["+strings.Join(extra, " ")+"]"))
	}
	return strings.Join(parts, " ")
}

// printTopology writes one tree per NUMA partition.
func printTopology(ctx context.Context, w io.Writer, result *pipeline.Result, d describer) {
	for i, part := range result.Partitions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, nodeForest(ctx, StyleTitle.Render(part.Name()), part.Roots, d))
	}
	if len(result.Unassigned) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, nodeForest(ctx, StyleWarning.Render("no NUMA node"), result.Unassigned, d))
	}
}

func nodeForest(ctx context.Context, title string, roots []*topology.Node, d describer) *tree.Tree {
	t := tree.Root(title).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(StyleDim)
	for _, r := range roots {
		t.Child(nodeTree(ctx, r, d))
	}
	return t
}

func nodeTree(ctx context.Context, n *topology.Node, d describer) any {
	label := d.describe(ctx, n)
	if len(n.Children) == 0 {
		return label
	}
	t := tree.Root(label).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(StyleDim)
	for _, c := range n.Children {
		t.Child(nodeTree(ctx, c, d))
	}
	return t
}

// writeScanJSON writes the export document, colorized for terminals.
func writeScanJSON(w io.Writer, result *pipeline.Result, classes classdb.Labeler, color bool) error {
	var buf bytes.Buffer
	err := pcio.WriteJSON(pcio.Snapshot{
		RunID:       result.RunID,
		Root:        result.Root,
		GeneratedAt: time.Now().UTC(),
		Partitions:  result.Partitions,
		Unassigned:  result.Unassigned,
		Classes:     classes,
	}, &buf)
	if err != nil {
		return err
	}
	data := buf.Bytes()
	if color {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
