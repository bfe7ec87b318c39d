package cache

import "strings"

// Name kinds used with [Keyer.NameKey].
const (
	KindVendor = "vendor"
	KindDevice = "device"
)

// Keyer derives cache keys.
type Keyer interface {
	// NameKey returns the key for a resolved name. kind is KindVendor or
	// KindDevice; id is "vvvv" or "vvvv:dddd".
	NameKey(kind, id string) string
}

// DefaultKeyer produces keys of the form "name:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// NameKey hashes kind and the lower-cased id.
func (DefaultKeyer) NameKey(kind, id string) string {
	return hashKey("name", kind, strings.ToLower(id))
}
