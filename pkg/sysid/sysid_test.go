package sysid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

const gpuList = "0, 00000000:17:00.0\n1, 00000000:2A:00.0\nbogus\nx, 0000:3d:00.0\n"

const topoMatrix = "\x1b[4m\tGPU0\tGPU1\tGPU2\tNIC0\tCPU Affinity\tNUMA Affinity\x1b[0m\n" +
	"GPU0\t X \tNV18\tSYS\tPXB\t0-55\t0\n" +
	"GPU1\tNV18\t X \tNV6\tSYS\t0-55\t0\n" +
	"GPU2\tSYS\tNV6\t X \tSYS\t56-111\t1\n" +
	"NIC0\tPXB\tSYS\tSYS\t X \t\t\n" +
	"\n" +
	"Legend:\n\n  X    = Self\n  NV#  = Connection traversing a bonded set of # NVLinks\n"

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/sys/devices/pci0000:00/0000:00:01.0/0000:17:00.0", "0000:17:00.0", true},
		{"/sys/devices/pci0000:00/0000:00:01.0/0000:17:00.1", "0000:17:00.1", true},
		{"/sys/devices/pci0000:00/0000:00:01.0/0000:1A:00.0", "0000:1a:00.0", true},
		{"/sys/devices/pci0000:00/0000:00:01.0/0000:17:00.x", "", false},
		{"/sys/devices/pci0000:00", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ExtractAddress(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractAddress(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct{ in, want string }{
		{"00000000:17:00.0", "0000:17:00.0"},
		{"00000001:17:00.0", "0001:17:00.0"},
		{"17:00.0", "0000:17:00.0"},
		{"0000:AB:00.1", "0000:ab:00.1"},
	}
	for _, tt := range tests {
		if got := normalizeAddress(tt.in); got != tt.want {
			t.Errorf("normalizeAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseGPUList(t *testing.T) {
	gpus := ParseGPUList([]byte(gpuList))
	want := map[string]int{"0000:17:00.0": 0, "0000:2a:00.0": 1}
	if len(gpus) != len(want) {
		t.Fatalf("got %v, want %v", gpus, want)
	}
	for addr, n := range want {
		if gpus[addr] != n {
			t.Errorf("gpus[%s] = %d, want %d", addr, gpus[addr], n)
		}
	}
}

func TestParseTopoMatrix(t *testing.T) {
	links := ParseTopoMatrix([]byte(topoMatrix))

	tests := []struct {
		a, b int
		want string
	}{
		{0, 1, "NV18"},
		{1, 0, "NV18"},
		{1, 2, "NV6"},
		{2, 1, "NV6"},
		{0, 2, ""},
	}
	for _, tt := range tests {
		if got := links[tt.a][tt.b]; got != tt.want {
			t.Errorf("links[%d][%d] = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseTopoMatrixSpaceSeparated(t *testing.T) {
	out := "        GPU0    GPU1\nGPU0     X      NV4\nGPU1    NV4      X\n"
	links := ParseTopoMatrix([]byte(out))
	if links[0][1] != "NV4" || links[1][0] != "NV4" {
		t.Errorf("links = %v", links)
	}
}

func TestParseTopoMatrixNoGPUs(t *testing.T) {
	if links := ParseTopoMatrix([]byte("\tNIC0\tNIC1\nNIC0\t X \tPIX\n")); len(links) != 0 {
		t.Errorf("links = %v, want none", links)
	}
}

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func fakeNvidiaSMI(t *testing.T) execx.Runner {
	return execx.RunnerFunc(func(_ context.Context, _ []byte, name string, args ...string) ([]byte, error) {
		if name != "nvidia-smi" {
			t.Errorf("unexpected command %q", name)
		}
		if len(args) > 0 && args[0] == "topo" {
			return []byte(topoMatrix), nil
		}
		return []byte(gpuList), nil
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t,
		filepath.Join(dir, "0000:3f:00.0", "net", "enp63s0f0np0"),
		filepath.Join(dir, "0000:3f:00.0", "infiniband", "mlx5_1"),
		filepath.Join(dir, "0000:5a:00.0", "nvme", "nvme0"),
		filepath.Join(dir, "0000:17:00.0"),
		filepath.Join(dir, "0000:2a:00.0"),
	)

	table := Load(context.Background(), WithDevicesDir(dir), WithRunner(fakeNvidiaSMI(t)))

	nic := table.Lookup("/sys/devices/pci0000:3a/0000:3a:00.0/0000:3f:00.0")
	if nic.Netdev != "enp63s0f0np0" || nic.RDMA != "mlx5_1" || nic.GPU != nil {
		t.Errorf("nic identifiers = %+v", nic)
	}
	if got := table.Lookup("/sys/devices/pci0000:5a/0000:5a:00.0").NVMe; got != "nvme0" {
		t.Errorf("nvme = %q", got)
	}

	gpu := table.Lookup("/sys/devices/pci0000:15/0000:15:01.0/0000:17:00.0")
	if gpu.GPU == nil || *gpu.GPU != 0 {
		t.Errorf("gpu identifiers = %+v", gpu)
	}
	// Other functions of a GPU inherit the index of function 0.
	if n, ok := table.GPUIndex("/sys/devices/pci0000:29/0000:2a:00.1"); !ok || n != 1 {
		t.Errorf("GPUIndex(2a:00.1) = %d, %v", n, ok)
	}
	if !table.Lookup("/sys/devices/pci0000:00/0000:00:00.0").IsZero() {
		t.Error("unknown function should have no identifiers")
	}

	if got := table.GPUs(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("GPUs() = %v", got)
	}
	if !table.HasNVLink() {
		t.Fatal("expected NVLink data")
	}
	links := table.NVLinks()
	want := []Link{{0, 1, "NV18"}, {1, 2, "NV6"}}
	if len(links) != len(want) {
		t.Fatalf("NVLinks() = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("NVLinks()[%d] = %v, want %v", i, links[i], want[i])
		}
	}
}

func TestLoadWithoutSources(t *testing.T) {
	failing := execx.RunnerFunc(func(context.Context, []byte, string, ...string) ([]byte, error) {
		return nil, errors.New("nvidia-smi: not installed")
	})
	table := Load(context.Background(),
		WithDevicesDir(filepath.Join(t.TempDir(), "missing")),
		WithRunner(failing),
	)
	if table.HasNVLink() || len(table.GPUs()) != 0 {
		t.Error("expected empty table")
	}
	if !table.Lookup("/sys/devices/pci0000:00/0000:00:01.0").IsZero() {
		t.Error("expected no identifiers")
	}
}

func TestLoadSkipsTopoWithoutGPUs(t *testing.T) {
	var topoCalled bool
	run := execx.RunnerFunc(func(_ context.Context, _ []byte, _ string, args ...string) ([]byte, error) {
		if strings.Join(args, " ") == "topo -m" {
			topoCalled = true
		}
		return nil, nil
	})
	Load(context.Background(), WithDevicesDir(t.TempDir()), WithRunner(run))
	if topoCalled {
		t.Error("topo matrix should not be queried when no GPU is known")
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if !table.Lookup("/sys/devices/pci0000:00/0000:00:01.0").IsZero() {
		t.Error("nil table should return no identifiers")
	}
	if table.HasNVLink() || table.NVLinks() != nil {
		t.Error("nil table should have no links")
	}
}

func TestLookupSyntheticPath(t *testing.T) {
	table := Empty()
	table.netdev["0000:00:01.0"] = "eth0"
	if got := table.Lookup("/sys/devices/pci0000:00/0000:00:01.0/0000:17:00.x"); !got.IsZero() {
		t.Errorf("Lookup(synthetic) = %+v, want no identifiers", got)
	}
	if got := table.Lookup("/sys/devices/pci0000:00/0000:00:01.0").Netdev; got != "eth0" {
		t.Errorf("Lookup(parent).Netdev = %q, want eth0", got)
	}
}
