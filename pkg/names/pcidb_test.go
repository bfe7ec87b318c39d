package names

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePCIIDs = `# pci.ids sample
#
10de  NVIDIA Corporation
	2330  GH100 [H100 SXM5 80GB]
		10de 16c1  H100 SXM5 80GB
	1eb8  TU104GL [Tesla T4]
15b3  Mellanox Technologies
	1021  MT2910 Family [ConnectX-7]
bogus line
	ffff  Orphan Device

C 02  Network controller
	00  Ethernet controller
`

func TestParsePCIIDs(t *testing.T) {
	db, err := ParsePCIIDs(strings.NewReader(samplePCIIDs))
	if err != nil {
		t.Fatalf("ParsePCIIDs: %v", err)
	}

	vendors := map[string]string{
		"10de": "NVIDIA Corporation",
		"15b3": "Mellanox Technologies",
	}
	for id, want := range vendors {
		if got := db.Vendors[id]; got != want {
			t.Errorf("vendor %s = %q, want %q", id, got, want)
		}
	}

	devices := map[string]string{
		"10de:2330": "GH100 [H100 SXM5 80GB]",
		"10de:1eb8": "TU104GL [Tesla T4]",
		"15b3:1021": "MT2910 Family [ConnectX-7]",
	}
	for key, want := range devices {
		if got := db.Devices[key]; got != want {
			t.Errorf("device %s = %q, want %q", key, got, want)
		}
	}
	if len(db.Devices) != len(devices) {
		t.Errorf("got %d devices, want %d: %v", len(db.Devices), len(devices), db.Devices)
	}
	if _, ok := db.Vendors["c 02"]; ok {
		t.Error("class section should not be parsed as vendors")
	}
}

func TestLoadPCIDB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pci.ids")
	if err := os.WriteFile(path, []byte(samplePCIIDs), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := LoadPCIDB(filepath.Join(dir, "missing"), path)
	if err != nil {
		t.Fatalf("LoadPCIDB: %v", err)
	}
	if name, ok := db.vendor("15b3"); !ok || name != "Mellanox Technologies" {
		t.Errorf("vendor(15b3) = %q, %v", name, ok)
	}

	db, err = LoadPCIDB(filepath.Join(dir, "missing"))
	if err == nil {
		t.Error("expected error when no file is readable")
	}
	if db == nil || len(db.Vendors) != 0 {
		t.Error("expected empty database on failure")
	}
}

func TestSplitIDLine(t *testing.T) {
	tests := []struct {
		in       string
		id, name string
		ok       bool
	}{
		{"10DE  NVIDIA", "10de", "NVIDIA", true},
		{"zzzz  Bad", "", "", false},
		{"10de", "", "", false},
		{"10de    ", "", "", false},
	}
	for _, tt := range tests {
		id, name, ok := splitIDLine(tt.in)
		if id != tt.id || name != tt.name || ok != tt.ok {
			t.Errorf("splitIDLine(%q) = %q, %q, %v", tt.in, id, name, ok)
		}
	}
}
