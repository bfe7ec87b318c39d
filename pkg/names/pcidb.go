package names

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// PCIIDPaths are the usual locations of pci.ids, searched in order (the
// same list lspci uses).
var PCIIDPaths = []string{
	"/usr/share/hwdata/pci.ids",
	"/usr/share/misc/pci.ids",
	"/usr/share/pci.ids",
}

// PCIDB holds vendor and device names parsed from pci.ids.
type PCIDB struct {
	Vendors map[string]string // "10de" -> name
	Devices map[string]string // "10de:2330" -> name
}

// LoadPCIDB parses the first readable file among paths. With no paths
// given it searches [PCIIDPaths]. It returns an empty database and the
// last error when none can be read.
func LoadPCIDB(paths ...string) (*PCIDB, error) {
	if len(paths) == 0 {
		paths = PCIIDPaths
	}
	var lastErr error
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			lastErr = err
			continue
		}
		db, err := ParsePCIIDs(f)
		f.Close()
		if err == nil {
			return db, nil
		}
		lastErr = err
	}
	return emptyPCIDB(), lastErr
}

// ParsePCIIDs parses the pci.ids format:
//
//	VVVV  Vendor Name
//	\tDDDD  Device Name
//	\t\tSSSS SSSS  Subsystem Name
//
// Subsystem lines are skipped and parsing stops at the class section.
func ParsePCIIDs(r io.Reader) (*PCIDB, error) {
	db := emptyPCIDB()
	var vendor string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, "C ") {
			break
		}
		if strings.HasPrefix(line, "\t\t") {
			continue
		}
		if line[0] == '\t' {
			id, name, ok := splitIDLine(line[1:])
			if ok && vendor != "" {
				db.Devices[vendor+":"+id] = name
			}
			continue
		}
		id, name, ok := splitIDLine(line)
		if !ok {
			vendor = ""
			continue
		}
		vendor = id
		db.Vendors[id] = name
	}
	return db, scanner.Err()
}

func (db *PCIDB) vendor(id string) (string, bool) {
	if db == nil {
		return "", false
	}
	name, ok := db.Vendors[id]
	return name, ok
}

func (db *PCIDB) device(key string) (string, bool) {
	if db == nil {
		return "", false
	}
	name, ok := db.Devices[key]
	return name, ok
}

// splitIDLine splits "VVVV  Name" into a lower-case ID and the trimmed
// name.
func splitIDLine(s string) (id, name string, ok bool) {
	if len(s) < 6 || !isHex4(s[:4]) {
		return "", "", false
	}
	name = strings.TrimSpace(s[4:])
	if name == "" {
		return "", "", false
	}
	return strings.ToLower(s[:4]), name, true
}

func isHex4(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return len(s) == 4
}

func emptyPCIDB() *PCIDB {
	return &PCIDB{
		Vendors: make(map[string]string),
		Devices: make(map[string]string),
	}
}
