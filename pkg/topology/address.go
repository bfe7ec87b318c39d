package topology

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SyntheticFunction is the function field used in the name of a synthetic
// multifunction node, e.g. "0000:3b:00.x".
const SyntheticFunction = "x"

var addressPattern = regexp.MustCompile(`^([0-9a-fA-F]{4}):([0-9a-fA-F]{2}):([0-9a-fA-F]{2})\.([0-7])$`)

// Address is a PCI function address: domain, bus, device and function.
type Address struct {
	Domain   uint16
	Bus      uint8
	Device   uint8
	Function uint8
}

// ParseAddress parses a "DDDD:BB:DD.F" address such as "0000:3b:00.1".
// Hex digits may be upper or lower case.
func ParseAddress(s string) (Address, error) {
	m := addressPattern.FindStringSubmatch(s)
	if m == nil {
		return Address{}, fmt.Errorf("invalid PCI address %q", s)
	}
	domain, _ := strconv.ParseUint(m[1], 16, 16)
	bus, _ := strconv.ParseUint(m[2], 16, 8)
	dev, _ := strconv.ParseUint(m[3], 16, 8)
	fn, _ := strconv.ParseUint(m[4], 16, 8)
	if dev > 0x1f {
		return Address{}, fmt.Errorf("invalid PCI address %q: device %#x out of range", s, dev)
	}
	return Address{
		Domain:   uint16(domain),
		Bus:      uint8(bus),
		Device:   uint8(dev),
		Function: uint8(fn),
	}, nil
}

// String formats the address as "dddd:bb:dd.f" in lower case.
func (a Address) String() string {
	return fmt.Sprintf("%04x:%02x:%02x.%x", a.Domain, a.Bus, a.Device, a.Function)
}

// DevicePrefix returns the "dddd:bb:dd" part shared by all functions of
// one device.
func (a Address) DevicePrefix() string {
	return fmt.Sprintf("%04x:%02x:%02x", a.Domain, a.Bus, a.Device)
}

// DevicePrefix returns the "DDDD:BB:DD" part of a function or synthetic
// node name, preserving its case. It reports false when name is neither.
func DevicePrefix(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	if name[i+1:] == SyntheticFunction {
		if _, err := ParseAddress(name[:i] + ".0"); err != nil {
			return "", false
		}
		return name[:i], true
	}
	if _, err := ParseAddress(name); err != nil {
		return "", false
	}
	return name[:i], true
}

// ShortName strips the four-digit domain and its separator from a function
// or synthetic node name: "0000:3b:00.1" becomes "3b:00.1". Names shorter
// than the domain prefix are returned unchanged.
func ShortName(name string) string {
	if len(name) <= 5 {
		return name
	}
	return name[5:]
}
