package names

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// KnownDevices holds operator-supplied vendor and device names.
type KnownDevices struct {
	Vendors map[string]string // "10de" -> name
	Devices map[string]string // "10de:2330" -> name
}

// LoadKnownDevices reads a known-devices JSON file. A missing file gives an
// empty table and an error satisfying os.IsNotExist.
func LoadKnownDevices(path string) (*KnownDevices, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &KnownDevices{}, err
	}
	return ParseKnownDevices(data)
}

// ParseKnownDevices parses known-devices JSON. Keys are normalized to
// lower-case hex without a "0x" prefix; non-string values are skipped.
func ParseKnownDevices(data []byte) (*KnownDevices, error) {
	if !gjson.ValidBytes(data) {
		return &KnownDevices{}, fmt.Errorf("known devices: invalid JSON")
	}
	kd := &KnownDevices{
		Vendors: make(map[string]string),
		Devices: make(map[string]string),
	}
	gjson.GetBytes(data, "vendors").ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String {
			kd.Vendors[normalizeID(k.String())] = v.String()
		}
		return true
	})
	gjson.GetBytes(data, "devices").ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			return true
		}
		vendor, device, ok := strings.Cut(k.String(), ":")
		if ok {
			kd.Devices[deviceKey(vendor, device)] = v.String()
		}
		return true
	})
	return kd, nil
}

func (kd *KnownDevices) vendor(id string) (string, bool) {
	if kd == nil {
		return "", false
	}
	name, ok := kd.Vendors[id]
	return name, ok
}

func (kd *KnownDevices) device(key string) (string, bool) {
	if kd == nil {
		return "", false
	}
	name, ok := kd.Devices[key]
	return name, ok
}

// normalizeID lower-cases a hex ID and strips surrounding space and the
// "0x" prefix.
func normalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.TrimPrefix(id, "0x")
}

func deviceKey(vendor, device string) string {
	return normalizeID(vendor) + ":" + normalizeID(device)
}
