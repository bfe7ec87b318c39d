package names

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/matzehuels/pcietopo/pkg/execx"
)

// queryLSPCI asks lspci for the names of a vendor, or of a device when
// device is non-empty. It reports ok=false when lspci is missing, fails
// or lists no matching function.
func queryLSPCI(ctx context.Context, run execx.Runner, vendor, device string) (vendorName, deviceName string, ok bool) {
	if run == nil {
		return "", "", false
	}
	out, err := run.Run(ctx, nil, "lspci", "-vmm", "-d", vendor+":"+device)
	if err != nil {
		return "", "", false
	}
	vendorName, deviceName = parseLSPCI(out)
	if vendorName == "" {
		return "", "", false
	}
	return vendorName, deviceName, true
}

// parseLSPCI extracts the Vendor and Device fields of the first record in
// machine-readable lspci output ("Tag:\tValue" lines, records separated by
// blank lines).
func parseLSPCI(out []byte) (vendor, device string) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), "\t")
		if line == "" {
			if vendor != "" {
				break
			}
			continue
		}
		tag, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch tag {
		case "Vendor":
			vendor = strings.TrimSpace(value)
		case "Device":
			device = strings.TrimSpace(value)
		}
	}
	return vendor, device
}
