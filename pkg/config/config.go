// Package config loads the pcietopo TOML configuration file.
//
// The file is optional. Values it sets override the built-in defaults and
// are in turn overridden by command-line flags; the CLI applies flags only
// when they were given explicitly.
//
// # Format
//
//	[scan]
//	root = "/sys/devices"
//	workers = 4
//	timeout = "30s"
//
//	[filter]
//	show_all = false
//	any_gpu = true
//	any_network = false
//	any_storage = false
//	classes = ["Infiniband controller"]
//
//	[output]
//	dir = "out"
//	formats = ["pdf", "json"]
//	detailed = false
//
//	[names]
//	known_devices = "/etc/pcietopo/known_devices.json"
//	pci_ids = "/usr/share/hwdata/pci.ids"
//	lspci = true
//
//	[cache]
//	backend = "file"      # file, redis or none
//	redis_url = "redis://cache:6379/0"
//	ttl = "720h"
//
// Unknown keys are rejected so that typos do not go unnoticed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/errors"
	"github.com/matzehuels/pcietopo/pkg/pipeline"
)

// FileName is the configuration file looked up under the config directory.
const FileName = "config.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded configuration file.
type Config struct {
	Scan   Scan   `toml:"scan"`
	Filter Filter `toml:"filter"`
	Output Output `toml:"output"`
	Names  Names  `toml:"names"`
	Cache  Cache  `toml:"cache"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Scan configures the sysfs walk.
type Scan struct {
	Root    string        `toml:"root"`
	Workers int           `toml:"workers"`
	Timeout time.Duration `toml:"timeout"`
}

// Filter selects which trees are rendered.
type Filter struct {
	// ShowAll disables filtering, whatever else is set.
	ShowAll    bool     `toml:"show_all"`
	AnyGPU     bool     `toml:"any_gpu"`
	AnyNetwork bool     `toml:"any_network"`
	AnyStorage bool     `toml:"any_storage"`
	Classes    []string `toml:"classes"`
}

// Output configures rendered artifacts.
type Output struct {
	Dir      string   `toml:"dir"`
	Formats  []string `toml:"formats"`
	Detailed bool     `toml:"detailed"`
}

// Names configures vendor and device name resolution.
type Names struct {
	KnownDevices string `toml:"known_devices"`
	PCIIDs       string `toml:"pci_ids"`
	// LSPCI enables the lspci fallback. Nil means enabled.
	LSPCI *bool `toml:"lspci"`
}

// LSPCIEnabled reports whether the lspci fallback may be used.
func (n Names) LSPCIEnabled() bool {
	return n.LSPCI == nil || *n.LSPCI
}

// Cache configures the persistent name cache.
type Cache struct {
	Backend  string        `toml:"backend"`
	RedisURL string        `toml:"redis_url"`
	TTL      time.Duration `toml:"ttl"`
}

// Load reads the configuration at path. An empty path searches
// [DefaultPath]; a missing default file yields an empty configuration,
// while a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates configuration text.
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/pcietopo/config.toml, falling back
// to ~/.config/pcietopo/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pcietopo", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pcietopo", FileName), nil
}

// Validate checks values that can be checked without touching the system.
func (c *Config) Validate() error {
	if c.Scan.Root != "" {
		if err := errors.ValidateRoot(c.Scan.Root); err != nil {
			return err
		}
	}
	if c.Scan.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scan.workers cannot be negative")
	}
	if c.Scan.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scan.timeout cannot be negative")
	}
	for _, cls := range c.Filter.Classes {
		if err := errors.ValidateClassToken(cls); err != nil {
			return err
		}
	}
	if c.Output.Dir != "" {
		if err := errors.ValidateOutputDir(c.Output.Dir); err != nil {
			return err
		}
	}
	switch c.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if err := errors.ValidateRedisURL(c.Cache.RedisURL); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	return nil
}

// FilterClasses expands the filter section into class labels: the labels
// of every enabled quick-filter group followed by the explicit classes,
// without duplicates. ShowAll returns nil, meaning no filtering.
func (f Filter) FilterClasses(db *classdb.DB) []string {
	if f.ShowAll {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	add := func(labels ...string) {
		for _, l := range labels {
			k := strings.ToLower(strings.TrimSpace(l))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, strings.TrimSpace(l))
		}
	}
	groups := []struct {
		on   bool
		name string
	}{
		{f.AnyGPU, classdb.GroupGPU},
		{f.AnyNetwork, classdb.GroupNetwork},
		{f.AnyStorage, classdb.GroupStorage},
	}
	for _, g := range groups {
		if !g.on {
			continue
		}
		labels, _ := db.Group(g.name)
		add(labels...)
	}
	add(f.Classes...)
	return out
}

// Apply copies every value the file sets into opts. Fields the file leaves
// unset keep whatever opts already holds.
func (c *Config) Apply(opts *pipeline.Options, db *classdb.DB) {
	if c.Scan.Root != "" {
		opts.Root = c.Scan.Root
	}
	if c.Scan.Workers > 0 {
		opts.Workers = c.Scan.Workers
	}
	if c.Scan.Timeout > 0 {
		opts.Timeout = c.Scan.Timeout
	}
	if classes := c.Filter.FilterClasses(db); len(classes) > 0 {
		opts.FilterClasses = classes
	}
	if c.Output.Dir != "" {
		opts.OutputDir = c.Output.Dir
	}
	if len(c.Output.Formats) > 0 {
		opts.Formats = append([]string(nil), c.Output.Formats...)
	}
	if c.Output.Detailed {
		opts.Detailed = true
	}
}
