package cache

// ScopedKeyer wraps a Keyer with a prefix, so several tools or database
// versions can share one Redis instance without mixing entries.
//
// Example usage:
//
//	// Names resolved against a specific pci.ids snapshot
//	k := NewScopedKeyer(NewDefaultKeyer(), "pcietopo:2024.06:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// NameKey generates a prefixed key for a resolved name.
func (k *ScopedKeyer) NameKey(kind, id string) string {
	return k.prefix + k.inner.NameKey(kind, id)
}
