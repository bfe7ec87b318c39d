package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/pcietopo/pkg/classdb"
	"github.com/matzehuels/pcietopo/pkg/topology"
	"github.com/matzehuels/pcietopo/pkg/topology/transform"
)

// Version is the export format version written to every document.
const Version = 1

// Snapshot is the input of [WriteJSON]: one finalized run.
type Snapshot struct {
	RunID       string
	Root        string
	GeneratedAt time.Time
	Partitions  []transform.Partition
	Unassigned  []*topology.Node

	// Classes labels class codes. Nil leaves "class_label" empty.
	Classes classdb.Labeler
}

type document struct {
	Version     int         `json:"version"`
	RunID       string      `json:"run_id,omitempty"`
	Root        string      `json:"sysfs_root,omitempty"`
	GeneratedAt *time.Time  `json:"generated_at,omitempty"`
	Partitions  []partition `json:"partitions"`
	Unassigned  []node      `json:"unassigned,omitempty"`
}

type partition struct {
	Name  string `json:"name"`
	NUMA  int    `json:"numa"`
	Roots []node `json:"roots"`
}

type link struct {
	Speed    string `json:"speed,omitempty"`
	MaxSpeed string `json:"max_speed,omitempty"`
	Width    string `json:"width,omitempty"`
	MaxWidth string `json:"max_width,omitempty"`
}

type node struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	Synthetic  bool   `json:"synthetic,omitempty"`
	VendorID   string `json:"vendor,omitempty"`
	DeviceID   string `json:"device,omitempty"`
	Class      string `json:"class,omitempty"`
	ClassLabel string `json:"class_label,omitempty"`
	NUMA       *int   `json:"numa,omitempty"`
	Link       *link  `json:"link,omitempty"`
	Children   []node `json:"children,omitempty"`
}

// WriteJSON encodes a snapshot as indented JSON and writes it to w.
// Partitions keep their order and every tree is written depth-first in
// child order, so the same topology always produces the same bytes apart
// from run_id and generated_at.
func WriteJSON(s Snapshot, w io.Writer) error {
	doc := document{
		Version:    Version,
		RunID:      s.RunID,
		Root:       s.Root,
		Partitions: make([]partition, 0, len(s.Partitions)),
	}
	if !s.GeneratedAt.IsZero() {
		t := s.GeneratedAt.UTC()
		doc.GeneratedAt = &t
	}
	for _, p := range s.Partitions {
		doc.Partitions = append(doc.Partitions, partition{
			Name:  p.Name(),
			NUMA:  p.NUMA,
			Roots: convertAll(p.Roots, s.Classes),
		})
	}
	doc.Unassigned = convertAll(s.Unassigned, s.Classes)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

func convertAll(roots []*topology.Node, classes classdb.Labeler) []node {
	if len(roots) == 0 {
		return nil
	}
	out := make([]node, len(roots))
	for i, r := range roots {
		out[i] = convert(r, classes)
	}
	return out
}

func convert(n *topology.Node, classes classdb.Labeler) node {
	nd := node{
		ID:        n.ID(),
		Path:      n.Path,
		Synthetic: n.IsSynthetic(),
		VendorID:  n.VendorID,
		DeviceID:  n.DeviceID,
		Class:     n.Class,
		NUMA:      n.NUMA,
		Children:  convertAll(n.Children, classes),
	}
	if classes != nil && n.Class != "" {
		nd.ClassLabel = classes.Label(n.Class)
	}
	l := link{
		Speed:    n.CurrentLinkSpeed,
		MaxSpeed: n.MaxLinkSpeed,
		Width:    n.CurrentLinkWidth,
		MaxWidth: n.MaxLinkWidth,
	}
	if l != (link{}) {
		nd.Link = &l
	}
	return nd
}
