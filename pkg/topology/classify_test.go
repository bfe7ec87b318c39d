package topology

import "testing"

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		class      string
		bridge     bool
		network    bool
		ethernet   bool
		infiniband bool
		threeD     bool
		peripheral bool
	}{
		{"0x060400", true, false, false, false, false, false},
		{"060400", true, false, false, false, false, false},
		{"0X060400", true, false, false, false, false, false},
		{"0x020000", false, true, true, false, false, false},
		{"0x020700", false, true, false, true, false, false},
		{"0x028000", false, true, false, false, false, false},
		{"0x030200", false, false, false, false, true, false},
		{"0x088000", false, false, false, false, false, true},
		{"0x010802", false, false, false, false, false, false},
		{"", false, false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			n := &Node{Path: "/p/0000:00:00.0", Class: tt.class}
			check := func(name string, got, want bool) {
				if got != want {
					t.Errorf("%s(%q) = %v, want %v", name, tt.class, got, want)
				}
			}
			check("IsBridge", IsBridge(n), tt.bridge)
			check("IsNetworkClass", IsNetworkClass(n), tt.network)
			check("IsEthernetClass", IsEthernetClass(n), tt.ethernet)
			check("IsInfinibandClass", IsInfinibandClass(n), tt.infiniband)
			check("Is3DController", Is3DController(n), tt.threeD)
			check("IsOtherSystemPeripheral", IsOtherSystemPeripheral(n), tt.peripheral)
		})
	}
}

func TestPredicatesNilNode(t *testing.T) {
	if IsBridge(nil) || IsSwitch(nil) || IsSynthetic(nil) || IsMultifunctionSwitch(nil) {
		t.Error("predicates must be false for nil")
	}
}

func TestNormalizeClass(t *testing.T) {
	tests := map[string]string{
		"0x060400":  "0x060400",
		" 060400\n": "0x060400",
		"0XABCDEF":  "0xabcdef",
		"":          "",
		"   ":       "",
	}
	for in, want := range tests {
		if got := NormalizeClass(in); got != want {
			t.Errorf("NormalizeClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func bridge(path string, children ...*Node) *Node {
	return &Node{Path: path, Class: "0x060400", Children: children}
}

func endpoint(path, class string) *Node {
	return &Node{Path: path, Class: class}
}

func TestIsSwitch(t *testing.T) {
	sw := bridge("/r/0000:01:00.0",
		bridge("/r/0000:01:00.0/0000:02:00.0"),
		bridge("/r/0000:01:00.0/0000:02:01.0"),
		bridge("/r/0000:01:00.0/0000:02:02.0"),
		endpoint("/r/0000:01:00.0/0000:02:03.0", "0x088000"),
	)
	if !IsSwitch(sw) {
		t.Error("bridge with three bridge children should be a switch")
	}

	single := bridge("/r/0000:01:00.0",
		bridge("/r/0000:01:00.0/0000:02:00.0"),
		endpoint("/r/0000:01:00.0/0000:02:03.0", "0x020000"),
	)
	if IsSwitch(single) {
		t.Error("bridge with one bridge child should not be a switch")
	}

	nonBridge := &Node{Path: "/r/0000:01:00.0", Class: "0x030200", Children: sw.Children}
	if IsSwitch(nonBridge) {
		t.Error("non-bridge parent should not be a switch")
	}
}

func TestIsMultifunctionSwitch(t *testing.T) {
	mixed := &Node{Path: "/r/0000:00:02.x", Children: []*Node{
		bridge("/r/0000:00:02.0"),
		endpoint("/r/0000:00:02.1", "0x088000"),
	}}
	if !IsSynthetic(mixed) || !IsMultifunctionSwitch(mixed) {
		t.Error("synthetic node with bridge and endpoint should be a multifunction switch")
	}

	endpoints := &Node{Path: "/r/0000:3b:00.x", Children: []*Node{
		endpoint("/r/0000:3b:00.0", "0x020000"),
		endpoint("/r/0000:3b:00.1", "0x020000"),
	}}
	if IsMultifunctionSwitch(endpoints) {
		t.Error("synthetic node without bridges should not be a multifunction switch")
	}

	plain := &Node{Path: "/r/0000:00:02.0", Class: "0x060400", Children: mixed.Children}
	if IsMultifunctionSwitch(plain) {
		t.Error("real node should not be a multifunction switch")
	}
}
