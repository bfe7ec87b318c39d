package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pcietopo/pkg/classdb"
)

// classesCommand lists the labels accepted by --filter-classes.
func (c *CLI) classesCommand() *cobra.Command {
	var showCodes, groups bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List PCI class labels usable with --filter-classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := classdb.New()
			out := cmd.OutOrStdout()
			if groups {
				printGroups(out, db)
				return nil
			}
			printClasses(out, db, showCodes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCodes, "codes", false, "show the class code of every entry")
	cmd.Flags().BoolVar(&groups, "groups", false, "show the quick-filter groups (any_gpu, any_network, any_storage)")

	return cmd
}

func printClasses(w io.Writer, db *classdb.DB, codes bool) {
	if !codes {
		for _, l := range db.Labels() {
			fmt.Fprintln(w, l)
		}
		return
	}
	for _, e := range db.Entries() {
		fmt.Fprintf(w, "%s  %s\n", StyleDim.Render(e.Code), e.Label)
	}
}

func printGroups(w io.Writer, db *classdb.DB) {
	for _, name := range db.GroupNames() {
		labels, _ := db.Group(name)
		fmt.Fprintln(w, StyleTitle.Render(name))
		for _, l := range labels {
			fmt.Fprintln(w, "  "+l)
		}
	}
	fmt.Fprintln(w, StyleDim.Render("enable in config: [filter] "+strings.Join(groupKeys(db), ", ")))
}

func groupKeys(db *classdb.DB) []string {
	names := db.GroupNames()
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = "any_" + n
	}
	return keys
}
