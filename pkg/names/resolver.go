package names

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pcietopo/pkg/cache"
	"github.com/matzehuels/pcietopo/pkg/execx"
	"github.com/matzehuels/pcietopo/pkg/observability"
)

// Labels used when an ID is missing altogether.
const (
	UnknownVendor = "Unknown Vendor"
	UnknownDevice = "Unknown Device"
)

// Resolver maps vendor and device IDs to names. It is safe for concurrent
// use. Build one per run and pass it to the renderer.
type Resolver struct {
	known  *KnownDevices
	db     *PCIDB
	run    execx.Runner
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	logger *log.Logger

	mu      sync.Mutex
	vendors map[string]string
	devices map[string]string
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithKnownDevices sets the operator-supplied name table.
func WithKnownDevices(kd *KnownDevices) Option {
	return func(r *Resolver) { r.known = kd }
}

// WithPCIDB sets the pci.ids database.
func WithPCIDB(db *PCIDB) Option {
	return func(r *Resolver) { r.db = db }
}

// WithRunner sets the runner used for lspci. A nil runner disables the
// lspci fallback.
func WithRunner(run execx.Runner) Option {
	return func(r *Resolver) { r.run = run }
}

// WithCache sets the persistent name cache and the TTL of its entries.
func WithCache(c cache.Cache, keyer cache.Keyer, ttl time.Duration) Option {
	return func(r *Resolver) {
		if c != nil {
			r.cache = c
		}
		if keyer != nil {
			r.keyer = keyer
		}
		r.ttl = ttl
	}
}

// WithLogger sets the logger for cache failures.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a resolver. Without options it only has the lspci fallback.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		run:     execx.Exec{},
		cache:   cache.NewNullCache(),
		keyer:   cache.NewDefaultKeyer(),
		ttl:     cache.TTLNames,
		logger:  log.New(io.Discard),
		vendors: make(map[string]string),
		devices: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// VendorName returns the name of vendorID ("0x10de" or "10de").
func (r *Resolver) VendorName(ctx context.Context, vendorID string) string {
	id := normalizeID(vendorID)
	if id == "" {
		return UnknownVendor
	}
	if name, ok := r.memo(r.vendors, id); ok {
		return name
	}

	name, ok := r.known.vendor(id)
	if !ok {
		name, ok = r.db.vendor(id)
	}
	if !ok {
		name, ok = r.lookupRemote(ctx, cache.KindVendor, id, func() (string, bool) {
			v, _, found := queryLSPCI(ctx, r.run, id, "")
			return v, found
		})
	}
	if !ok {
		name = id
	}
	r.store(r.vendors, id, name)
	return name
}

// DeviceName returns the name of deviceID made by vendorID.
func (r *Resolver) DeviceName(ctx context.Context, vendorID, deviceID string) string {
	dev := normalizeID(deviceID)
	if dev == "" {
		return UnknownDevice
	}
	vendor := normalizeID(vendorID)
	key := vendor + ":" + dev
	if name, ok := r.memo(r.devices, key); ok {
		return name
	}

	name, ok := r.known.device(key)
	if !ok {
		name, ok = r.db.device(key)
	}
	if !ok && vendor != "" {
		name, ok = r.lookupRemote(ctx, cache.KindDevice, key, func() (string, bool) {
			_, d, found := queryLSPCI(ctx, r.run, vendor, dev)
			return d, found && d != ""
		})
	}
	if !ok {
		name = dev
	}
	r.store(r.devices, key, name)
	return name
}

// lookupRemote consults the persistent cache, then query. A name found by
// query is written back to the cache. Cache errors are logged and treated
// as misses.
func (r *Resolver) lookupRemote(ctx context.Context, kind, id string, query func() (string, bool)) (string, bool) {
	key := r.keyer.NameKey(kind, id)
	data, found, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Debug("name cache read failed", "kind", kind, "id", id, "err", err)
	}
	if found {
		observability.Cache().OnCacheHit(ctx, kind)
		return string(data), true
	}
	observability.Cache().OnCacheMiss(ctx, kind)

	name, ok := query()
	if !ok {
		return "", false
	}
	if err := r.cache.Set(ctx, key, []byte(name), r.ttl); err != nil {
		r.logger.Debug("name cache write failed", "kind", kind, "id", id, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, kind, len(name))
	}
	return name, true
}

func (r *Resolver) memo(m map[string]string, key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := m[key]
	return name, ok
}

func (r *Resolver) store(m map[string]string, key, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m[key] = name
}
