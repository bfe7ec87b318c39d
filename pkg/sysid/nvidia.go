package sysid

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

var (
	ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)
	gpuLabel   = regexp.MustCompile(`^GPU(\d+)$`)
)

// Arguments for the two nvidia-smi invocations.
var (
	gpuQueryArgs = []string{"--query-gpu=index,pci.bus_id", "--format=csv,noheader,nounits"}
	topoArgs     = []string{"topo", "-m"}
)

// ParseGPUList parses "index, pci.bus_id" CSV lines into an address to
// GPU index map. Malformed lines are skipped.
func ParseGPUList(out []byte) map[string]int {
	gpus := make(map[string]int)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		idx, busID, ok := strings.Cut(scanner.Text(), ",")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			continue
		}
		busID = strings.TrimSpace(busID)
		if !addrPattern.MatchString(normalizeAddress(busID)) {
			continue
		}
		gpus[normalizeAddress(busID)] = n
	}
	return gpus
}

// ParseTopoMatrix parses the GPU connection matrix of "nvidia-smi topo -m"
// and returns the NVLink cells keyed by both GPU indices. Cells other
// than NV<n> (PIX, SYS, NODE, X) are ignored.
//
// The header row lists GPU<n> columns; each data row starts with its own
// GPU<n> label followed by one cell per column.
func ParseTopoMatrix(out []byte) map[int]map[int]string {
	links := make(map[int]map[int]string)
	var columns []int

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := ansiEscape.ReplaceAllString(scanner.Text(), "")
		fields := splitRow(line)
		if len(fields) < 2 {
			continue
		}

		if columns == nil {
			for _, f := range fields {
				if m := gpuLabel.FindStringSubmatch(f); m != nil {
					n, _ := strconv.Atoi(m[1])
					columns = append(columns, n)
				}
			}
			continue
		}

		m := gpuLabel.FindStringSubmatch(fields[0])
		if m == nil {
			continue
		}
		src, _ := strconv.Atoi(m[1])
		for j, dst := range columns {
			if j+1 >= len(fields) {
				break
			}
			cell := fields[j+1]
			if dst == src || !strings.HasPrefix(cell, "NV") {
				continue
			}
			addLink(links, src, dst, cell)
			addLink(links, dst, src, cell)
		}
	}
	return links
}

// splitRow splits a matrix row on tabs when present, otherwise on runs of
// spaces, and drops empty cells.
func splitRow(line string) []string {
	var raw []string
	if strings.Contains(line, "\t") {
		raw = strings.Split(line, "\t")
	} else {
		raw = strings.Fields(line)
	}
	fields := raw[:0]
	for _, f := range raw {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func addLink(links map[int]map[int]string, a, b int, kind string) {
	if links[a] == nil {
		links[a] = make(map[int]string)
	}
	links[a][b] = kind
}
