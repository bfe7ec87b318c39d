// Package classdb maps PCI class codes to human-readable labels.
//
// Lookup of a code such as "0x010803" falls back in four steps:
//
//  1. the exact 24-bit code,
//  2. the sub-class ("0x0108", programming interface ignored),
//  3. the base class ("0x01"),
//  4. "Unknown class (<code>)".
//
// An empty code has the empty label, which never matches a filter.
//
// The package also defines the quick-filter groups (gpu, network, storage)
// used by the CLI and the configuration file.
package classdb

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/pcietopo/pkg/topology"
)

// Labeler resolves a class code to a label. [DB] is the standard
// implementation; tests substitute their own.
type Labeler interface {
	Label(code string) string
}

// Entry is one row of the class table.
type Entry struct {
	Code  string // e.g. "0x030200"
	Label string // e.g. "3D controller"
}

// Quick-filter group names.
const (
	GroupGPU     = "gpu"
	GroupNetwork = "network"
	GroupStorage = "storage"
)

// DB is the class-code table. The zero value is not usable; call [New].
type DB struct {
	classes map[string]string
	bases   map[string]string
	groups  map[string][]string
}

// New returns the built-in class table.
func New() *DB {
	return &DB{
		classes: classes,
		bases:   baseClasses,
		groups: map[string][]string{
			GroupGPU:     labelsWithPrefix(classes, "0x03"),
			GroupNetwork: labelsWithPrefix(classes, "0x02"),
			GroupStorage: labelsWithPrefix(classes, "0x01"),
		},
	}
}

// Label returns the label for code. See the package documentation for the
// fallback order.
func (db *DB) Label(code string) string {
	raw := strings.TrimSpace(code)
	c := topology.NormalizeClass(raw)
	if c == "" {
		return ""
	}
	if l, ok := db.classes[c]; ok {
		return l
	}
	if len(c) >= 6 {
		if l, ok := db.subClass(c[:6]); ok {
			return l
		}
	}
	if len(c) >= 4 {
		if l, ok := db.bases[c[:4]]; ok {
			return l
		}
	}
	return fmt.Sprintf("Unknown class (%s)", raw)
}

// subClass returns the label of the sub-class entry with a zero
// programming interface, or else the lowest code under the sub-class.
func (db *DB) subClass(prefix string) (string, bool) {
	if l, ok := db.classes[prefix+"00"]; ok {
		return l, true
	}
	var best string
	for code := range db.classes {
		if strings.HasPrefix(code, prefix) && (best == "" || code < best) {
			best = code
		}
	}
	if best == "" {
		return "", false
	}
	return db.classes[best], true
}

// Entries returns the table sorted by class code.
func (db *DB) Entries() []Entry {
	out := make([]Entry, 0, len(db.classes))
	for code, label := range db.classes {
		out = append(out, Entry{Code: code, Label: label})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Code, b.Code) })
	return out
}

// Labels returns every distinct label in class-code order.
func (db *DB) Labels() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range db.Entries() {
		if !seen[e.Label] {
			seen[e.Label] = true
			out = append(out, e.Label)
		}
	}
	return out
}

// Known reports whether label, compared case-insensitively, appears in the
// table.
func (db *DB) Known(label string) bool {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, l := range db.classes {
		if strings.ToLower(l) == want {
			return true
		}
	}
	return false
}

// Group returns the labels of a quick-filter group.
func (db *DB) Group(name string) ([]string, bool) {
	labels, ok := db.groups[strings.ToLower(name)]
	return slices.Clone(labels), ok
}

// GroupNames returns the quick-filter group names in sorted order.
func (db *DB) GroupNames() []string {
	names := make([]string, 0, len(db.groups))
	for n := range db.groups {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func labelsWithPrefix(table map[string]string, prefix string) []string {
	var codes []string
	for code := range table {
		if strings.HasPrefix(code, prefix) {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	seen := make(map[string]bool)
	var out []string
	for _, c := range codes {
		if l := table[c]; !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
