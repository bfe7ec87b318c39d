package sysid

import (
	"path/filepath"
	"regexp"
	"strings"
)

var addrPattern = regexp.MustCompile(`[0-9a-fA-F]{4}:[0-9a-fA-F]{2}:[0-9a-fA-F]{2}\.[0-7]`)

// ExtractAddress returns the last PCI address in a sysfs path, which is
// the function the path names. Synthetic ".x" paths have none.
func ExtractAddress(path string) (string, bool) {
	if strings.HasSuffix(filepath.Base(path), ".x") {
		return "", false
	}
	matches := addrPattern.FindAllString(path, -1)
	if len(matches) == 0 {
		return "", false
	}
	return normalizeAddress(matches[len(matches)-1]), true
}

// normalizeAddress lower-cases an address and brings the domain to four
// digits. nvidia-smi prints eight ("00000000:17:00.0") and some tools
// omit it ("17:00.0").
func normalizeAddress(addr string) string {
	addr = strings.ToLower(strings.TrimSpace(addr))
	switch strings.Count(addr, ":") {
	case 1:
		return "0000:" + addr
	case 2:
		domain, rest, _ := strings.Cut(addr, ":")
		if len(domain) > 4 {
			domain = domain[len(domain)-4:]
		}
		return domain + ":" + rest
	}
	return addr
}

// functionZero returns the address of function 0 of the same device.
func functionZero(addr string) string {
	i := strings.LastIndexByte(addr, '.')
	if i < 0 {
		return addr
	}
	return addr[:i] + ".0"
}
