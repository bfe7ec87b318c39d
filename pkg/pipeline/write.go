package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/matzehuels/pcietopo/pkg/errors"
)

// ArtifactName returns the file name of a partition artifact, e.g.
// "numa_0.pdf".
func ArtifactName(partition, format string) string {
	return partition + "." + format
}

// WriteArtifacts writes every rendered artifact and the JSON export into
// dir, creating it if needed. Files are written partition by partition in
// NUMA order; the returned paths follow the same order.
func (r *Result) WriteArtifacts(dir string) ([]string, error) {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var paths []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	}

	for _, part := range r.Partitions {
		artifacts := r.Artifacts[part.Name()]
		formats := make([]string, 0, len(artifacts))
		for f := range artifacts {
			formats = append(formats, f)
		}
		sort.Strings(formats)
		for _, f := range formats {
			if err := write(ArtifactName(part.Name(), f), artifacts[f]); err != nil {
				return paths, err
			}
		}
	}
	if r.Export != nil {
		if err := write(ExportName, r.Export); err != nil {
			return paths, err
		}
	}
	return paths, nil
}
