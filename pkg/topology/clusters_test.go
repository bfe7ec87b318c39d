package topology

import (
	"slices"
	"testing"
)

// sampleTree builds:
//
//	root bridge 0000:00:01.0
//	├── synthetic 0000:01:00.x
//	│   ├── bridge 0000:01:00.0
//	│   │   └── gpu 0000:02:00.0
//	│   └── peripheral 0000:01:00.1
//	└── switch bridge 0000:05:00.0
//	    ├── bridge 0000:06:00.0
//	    └── bridge 0000:06:01.0
func sampleTree() *Node {
	gpu := endpoint("/r/0000:00:01.0/0000:01:00.0/0000:02:00.0", "0x030200")
	mf := &Node{Path: "/r/0000:00:01.0/0000:01:00.x", Children: []*Node{
		bridge("/r/0000:00:01.0/0000:01:00.0", gpu),
		endpoint("/r/0000:00:01.0/0000:01:00.1", "0x088000"),
	}}
	sw := bridge("/r/0000:00:01.0/0000:05:00.0",
		bridge("/r/0000:00:01.0/0000:05:00.0/0000:06:00.0"),
		bridge("/r/0000:00:01.0/0000:05:00.0/0000:06:01.0"),
	)
	return bridge("/r/0000:00:01.0", mf, sw)
}

func TestMultifunctionClusters(t *testing.T) {
	root := sampleTree()
	got := MultifunctionClusters(root)
	if len(got) != 1 {
		t.Fatalf("got %d clusters, want 1", len(got))
	}
	mf := root.Children[0]
	c := got[0]
	if c.Name != "mf_cluster_"+mf.ID() || c.Kind != ClusterMultifunction {
		t.Errorf("cluster = %+v", c)
	}
	want := []string{mf.ID(), mf.Children[0].ID(), mf.Children[1].ID()}
	if !slices.Equal(c.Members, want) {
		t.Errorf("Members = %v, want %v", c.Members, want)
	}
}

func TestSwitchClusters(t *testing.T) {
	root := sampleTree()
	got := SwitchClusters(root)
	if len(got) != 1 {
		t.Fatalf("got %d clusters, want 1", len(got))
	}
	sw := root.Children[1]
	want := []string{sw.ID(), sw.Children[0].ID(), sw.Children[1].ID()}
	if got[0].Name != "switch_"+sw.ID() || !slices.Equal(got[0].Members, want) {
		t.Errorf("cluster = %+v, want members %v", got[0], want)
	}
}

func TestMultifunctionSwitchClusters(t *testing.T) {
	root := sampleTree()
	got := MultifunctionSwitchClusters(root)
	if len(got) != 1 {
		t.Fatalf("got %d clusters, want 1", len(got))
	}
	mf := root.Children[0]
	br := mf.Children[0]
	want := []string{mf.ID(), br.ID(), br.Children[0].ID(), mf.Children[1].ID()}
	if got[0].Name != "mf_switch_"+mf.ID() || !slices.Equal(got[0].Members, want) {
		t.Errorf("cluster = %+v, want members %v", got[0], want)
	}
}

func TestClustersRecomputed(t *testing.T) {
	root := sampleTree()
	if n := len(SwitchClusters(root)); n != 1 {
		t.Fatalf("got %d switch clusters, want 1", n)
	}
	sw := root.Children[1]
	sw.SetChildren(sw.Children[:1])
	if n := len(SwitchClusters(root)); n != 0 {
		t.Errorf("after removing a bridge got %d switch clusters, want 0", n)
	}
}

func TestBreadthFirstOrder(t *testing.T) {
	root := sampleTree()
	var names []string
	BreadthFirst(root, func(n *Node) { names = append(names, n.Name()) })
	want := []string{
		"0000:00:01.0",
		"0000:01:00.x", "0000:05:00.0",
		"0000:01:00.0", "0000:01:00.1", "0000:06:00.0", "0000:06:01.0",
		"0000:02:00.0",
	}
	if !slices.Equal(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestTreeHelpers(t *testing.T) {
	root := sampleTree()
	if got := Count(root); got != 8 {
		t.Errorf("Count = %d, want 8", got)
	}
	if got := CountForest([]*Node{root, sampleTree()}); got != 16 {
		t.Errorf("CountForest = %d, want 16", got)
	}

	gpuPath := "/r/0000:00:01.0/0000:01:00.0/0000:02:00.0"
	if n := Find(root, gpuPath); n == nil || n.Class != "0x030200" {
		t.Errorf("Find(%q) = %+v", gpuPath, n)
	}
	if p := Parent(root, gpuPath); p == nil || p.Name() != "0000:01:00.0" {
		t.Errorf("Parent(%q) = %+v", gpuPath, p)
	}
	if Parent(root, root.Path) != nil {
		t.Error("Parent(root) should be nil")
	}
	if Find(root, "/missing") != nil {
		t.Error("Find(missing) should be nil")
	}

	paths := Paths([]*Node{root})
	if len(paths) != 8 || paths[0] != root.Path {
		t.Errorf("Paths = %v", paths)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := sampleTree()
	visited := 0
	Walk(root, func(n *Node, depth int) bool {
		visited++
		return !IsSynthetic(n)
	})
	// root, synthetic (children skipped), switch and its two bridges
	if visited != 5 {
		t.Errorf("visited %d nodes, want 5", visited)
	}
}
