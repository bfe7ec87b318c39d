package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/config"
	"github.com/matzehuels/pcietopo/pkg/pipeline"
	"github.com/matzehuels/pcietopo/pkg/render"
	"github.com/matzehuels/pcietopo/pkg/topology/transform"
)

// scanFlags are the flags shared by every command that walks sysfs.
type scanFlags struct {
	configPath    string        // TOML config file (default: XDG config dir)
	filterClasses string        // comma-separated class labels
	root          string        // sysfs root to walk
	workers       int           // containers walked in parallel
	timeout       time.Duration // bound on the sysfs walk
	noCache       bool          // skip the persistent name cache
}

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	scanFlags
	outputDir string // directory receiving numa_<n>.<format>
	formats   string // comma-separated output formats
	detailed  bool   // add raw IDs, NUMA node and class code to labels
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pcietopo/config.toml)")
	cmd.Flags().StringVar(&f.filterClasses, "filter-classes", "", "keep only trees containing one of these class labels (comma-separated)")
	cmd.Flags().StringVar(&f.root, "sysfs-root", pipeline.DefaultRoot, "sysfs directory holding the PCI host bridges")
	cmd.Flags().IntVar(&f.workers, "workers", pipeline.DefaultWorkers, "host bridges walked in parallel")
	cmd.Flags().DurationVar(&f.timeout, "timeout", pipeline.DefaultTimeout, "timeout for the sysfs walk")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "do not read or write the name cache")
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one PCIe topology diagram per NUMA node",
		Long: `Render walks sysfs, groups multifunction devices and switches, and writes
numa_<n>.<format> for every NUMA node into the output directory.

Examples:
  pcietopo render
  pcietopo render --filter-classes "3D controller,Infiniband controller" --format svg,pdf
  pcietopo render --sysfs-root ./fixture/sys/devices --format dot,json -o out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg, opts, err := c.buildOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(ctx, cfg, opts, flags.noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", pipeline.DefaultOutputDir, "output directory")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): pdf (default), svg, png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "show raw IDs, NUMA node and class codes in labels")

	return cmd
}

// buildOptions layers defaults, the config file and explicitly set flags,
// in that order.
func (c *CLI) buildOptions(cmd *cobra.Command, flags *renderFlags) (*config.Config, pipeline.Options, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	classes := classdb.New()
	opts := pipeline.Options{Classes: classes, Logger: c.Logger}
	cfg.Apply(&opts, classes)

	changed := cmd.Flags().Changed
	if changed("sysfs-root") {
		opts.Root = flags.root
	}
	if changed("workers") {
		opts.Workers = flags.workers
	}
	if changed("timeout") {
		opts.Timeout = flags.timeout
	}
	if changed("filter-classes") {
		// An empty list disables filtering, including any from the config.
		opts.FilterClasses = transform.ParseClassList(flags.filterClasses)
	}
	if changed("output-dir") {
		opts.OutputDir = flags.outputDir
	}
	if changed("format") {
		opts.Formats = parseFormats(flags.formats)
	}
	if changed("detailed") {
		opts.Detailed = flags.detailed
	}

	for _, label := range opts.FilterClasses {
		if !classes.Known(label) {
			c.Logger.Warn("unknown class label, it will never match", "class", label)
		}
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, pipeline.Options{}, err
	}
	return cfg, opts, nil
}

// runRender executes the pipeline and writes its artifacts.
func (c *CLI) runRender(ctx context.Context, cfg *config.Config, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx)

	svc, err := c.newServices(ctx, cfg, opts.Root, noCache)
	if err != nil {
		return err
	}
	defer svc.Close()

	opts.Names = svc.names
	opts.Identifiers = svc.ids
	opts.Converter = render.Converter{Runner: c.run}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}
	if result.NoMatch {
		printWarning("No PCIe trees match %s", strings.Join(opts.FilterClasses, ", "))
		printNextStep("List class labels", "pcietopo classes")
		return nil
	}

	paths, err := result.WriteArtifacts(opts.OutputDir)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d partitions", len(result.Partitions)))

	printSuccess("Rendered %d NUMA %s", len(result.Partitions), plural(len(result.Partitions), "node", "nodes"))
	printStats(result.Stats)
	for _, p := range paths {
		printFile(p)
	}
	if n := len(result.Unassigned); n > 0 {
		printWarning("%d %s without a NUMA node not rendered", n, plural(n, "tree", "trees"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
