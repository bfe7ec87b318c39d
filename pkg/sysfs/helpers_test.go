package sysfs

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates dir/name with content, creating dir as needed.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// function creates a function directory under parent with the given
// attribute files and returns its path.
func function(t *testing.T, parent, name string, attrs map[string]string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for k, v := range attrs {
		writeFile(t, dir, k, v+"\n")
	}
	return dir
}

func bridgeAttrs(numa string) map[string]string {
	return map[string]string{
		AttrVendor:   "0x8086",
		AttrDevice:   "0x2030",
		AttrClass:    "0x060400",
		AttrNUMANode: numa,
	}
}

func endpointAttrs(class, numa string) map[string]string {
	return map[string]string{
		AttrVendor:   "0x10de",
		AttrDevice:   "0x2330",
		AttrClass:    class,
		AttrNUMANode: numa,
	}
}
