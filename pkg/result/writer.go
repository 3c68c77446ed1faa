package result

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/nilsaker/geolab/internal/errs"
)

// OutputDir is the directory every result file is written under,
// relative to the process's working directory (spec §6: the engine
// always runs with the working directory at project root).
const OutputDir = "frontend/public"

// WriteDijkstra marshals d to OutputDir/result.json.
func WriteDijkstra(d Dijkstra) error {
	return write("result.json", d)
}

// WriteAnalytics marshals a to OutputDir/analytics.json.
func WriteAnalytics(a Analytics) error {
	return write("analytics.json", a)
}

// WriteHeat marshals a to OutputDir/heat_result.json.
func WriteHeat(a Analytics) error {
	return write("heat_result.json", a)
}

func write(filename string, payload any) error {
	if err := os.MkdirAll(OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %v", errs.ErrIO, err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal result: %v", errs.ErrIO, err)
	}

	path := filepath.Join(OutputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", errs.ErrIO, path, err)
	}
	return nil
}

// TotalDistancePtr returns a pointer suitable for Dijkstra.TotalDistance:
// nil when unreachable or non-finite, otherwise a pointer to dist.
func TotalDistancePtr(reachable bool, dist float64) *float64 {
	if !reachable || math.IsInf(dist, 0) || math.IsNaN(dist) {
		return nil
	}
	d := dist
	return &d
}
