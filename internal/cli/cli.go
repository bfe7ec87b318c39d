package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pcietopo/pkg/buildinfo"
	"github.com/matzehuels/pcietopo/pkg/cache"
	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/config"
	"github.com/matzehuels/pcietopo/pkg/execx"
	"github.com/matzehuels/pcietopo/pkg/names"
	"github.com/matzehuels/pcietopo/pkg/pipeline"
	"github.com/matzehuels/pcietopo/pkg/sysid"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pcietopo"

	// knownDevicesFile is looked up next to the config file when the
	// config does not name one.
	knownDevicesFile = "known_devices.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// run executes lspci, nvidia-smi and rsvg-convert. Tests replace it.
	run execx.Runner
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		run:    execx.Exec{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pcietopo draws the PCIe topology of a Linux host",
		Long: `pcietopo walks sysfs, rebuilds the PCIe bus/device/function hierarchy,
groups multifunction devices and switches, and renders one Graphviz
diagram per NUMA node.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.scanCommand())
	root.AddCommand(c.classesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Composition Root
// =============================================================================

// services are the read-only collaborators shared by one command run.
type services struct {
	classes *classdb.DB
	names   *names.Resolver
	ids     *sysid.Table
	cache   cache.Cache
}

// Close releases the name cache.
func (s *services) Close() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}

// newServices builds the name resolver and the identifier table. Missing
// optional sources (pci.ids, known devices, lspci, nvidia-smi) only reduce
// what the labels show.
func (c *CLI) newServices(ctx context.Context, cfg *config.Config, sysfsRoot string, noCache bool) (*services, error) {
	logger := loggerFromContext(ctx)

	store, err := newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}

	ttl := cfg.Cache.TTL
	if ttl == 0 {
		ttl = cache.TTLNames
	}
	opts := []names.Option{
		names.WithCache(store, cache.NewDefaultKeyer(), ttl),
		names.WithLogger(logger),
	}

	if kd := loadKnownDevices(logger, cfg); kd != nil {
		opts = append(opts, names.WithKnownDevices(kd))
	}

	var idsPaths []string
	if cfg.Names.PCIIDs != "" {
		idsPaths = []string{cfg.Names.PCIIDs}
	}
	db, err := names.LoadPCIDB(idsPaths...)
	if err != nil {
		logger.Debug("pci.ids unavailable", "err", err)
	}
	opts = append(opts, names.WithPCIDB(db))

	if cfg.Names.LSPCIEnabled() {
		opts = append(opts, names.WithRunner(c.run))
	} else {
		opts = append(opts, names.WithRunner(nil))
	}

	ids := sysid.Load(ctx,
		sysid.WithDevicesDir(devicesDir(sysfsRoot)),
		sysid.WithRunner(c.run),
		sysid.WithLogger(logger))

	return &services{
		classes: classdb.New(),
		names:   names.New(opts...),
		ids:     ids,
		cache:   store,
	}, nil
}

// loadKnownDevices reads the configured known-devices file, or the one next
// to the default config file when present.
func loadKnownDevices(logger *log.Logger, cfg *config.Config) *names.KnownDevices {
	path := cfg.Names.KnownDevices
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil
		}
		path = filepath.Join(filepath.Dir(p), knownDevicesFile)
	}
	kd, err := names.LoadKnownDevices(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			logger.Warn("known devices not loaded", "path", path, "err", err)
		}
		return nil
	}
	logger.Debug("loaded known devices", "path", path, "vendors", len(kd.Vendors), "devices", len(kd.Devices))
	return kd
}

// newCache opens the configured name cache.
func newCache(ctx context.Context, cfg config.Cache, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// devicesDir maps a sysfs root such as /sys/devices to the matching
// bus/pci/devices directory, so fake trees under a test root stay
// self-contained.
func devicesDir(root string) string {
	clean := filepath.Clean(root)
	if clean == filepath.Clean(pipeline.DefaultRoot) {
		return sysid.DefaultDevicesDir
	}
	return filepath.Join(filepath.Dir(clean), "bus", "pci", "devices")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pcietopo/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// Empty input returns nil so the config file or pipeline default applies.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
