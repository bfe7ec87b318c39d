package classdb

import (
	"slices"
	"testing"
)

func TestLabel(t *testing.T) {
	db := New()
	tests := []struct {
		code string
		want string
	}{
		{"0x030200", "3D controller"},
		{"0x020000", "Ethernet controller"},
		{"0x020700", "Infiniband controller"},
		{"0x060400", "PCI-to-PCI bridge"},
		{"0x010802", "NVM Express controller"},
		{"0X030200", "3D controller"},
		{"030200", "3D controller"},
		{" 0x030200\n", "3D controller"},
		{"0x0a8000", "Other docking station"},
		{"0x010803", "Non-Volatile memory controller"},
		{"0x0c0311", "USB UHCI controller"},
		{"0x02ff00", "Network controller"},
		{"0x14ff00", "Unknown class (0x14ff00)"},
		{"zzz", "Unknown class (zzz)"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := db.Label(tt.code); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestGroups(t *testing.T) {
	db := New()

	gpu, ok := db.Group("gpu")
	if !ok {
		t.Fatal("gpu group missing")
	}
	want := []string{"VGA compatible controller", "XGA controller", "3D controller", "Other display controller"}
	if !slices.Equal(gpu, want) {
		t.Errorf("gpu = %v, want %v", gpu, want)
	}

	network, _ := db.Group("NETWORK")
	if len(network) != 10 || network[0] != "Ethernet controller" || !slices.Contains(network, "Infiniband controller") {
		t.Errorf("network = %v", network)
	}

	storage, _ := db.Group("storage")
	if len(storage) != 17 || !slices.Contains(storage, "NVM Express controller") {
		t.Errorf("storage has %d labels: %v", len(storage), storage)
	}

	if _, ok := db.Group("sound"); ok {
		t.Error("unknown group reported as present")
	}
	if names := db.GroupNames(); !slices.Equal(names, []string{"gpu", "network", "storage"}) {
		t.Errorf("GroupNames = %v", names)
	}
}

func TestGroupReturnsCopy(t *testing.T) {
	db := New()
	g, _ := db.Group("gpu")
	g[0] = "changed"
	again, _ := db.Group("gpu")
	if again[0] == "changed" {
		t.Error("Group should not expose internal slice")
	}
}

func TestEntriesAndLabels(t *testing.T) {
	db := New()
	entries := db.Entries()
	if len(entries) == 0 || entries[0].Code != "0x000000" {
		t.Fatalf("Entries()[0] = %+v", entries[0])
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Code >= entries[i].Code {
			t.Fatalf("entries not sorted at %d: %s >= %s", i, entries[i-1].Code, entries[i].Code)
		}
	}

	labels := db.Labels()
	seen := make(map[string]bool)
	for _, l := range labels {
		if seen[l] {
			t.Errorf("duplicate label %q", l)
		}
		seen[l] = true
	}
	if !db.Known("3d CONTROLLER") || db.Known("flux capacitor") {
		t.Error("Known mismatch")
	}
}
