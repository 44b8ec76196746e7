package diagram

import (
	"github.com/guptarohit/asciigraph"

	"github.com/rlmedina/gotruss/internal/scene"
)

// LengthProfile charts member length by model order, a quick way to spot
// outliers in a large truss. Members without computed geometry are skipped.
// Returns the empty string when fewer than two members have lengths.
func LengthProfile(snap scene.Snapshot) string {
	var series []float64
	for _, mbr := range snap.Members {
		if mbr.Computed {
			series = append(series, mbr.Length)
		}
	}
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Caption("member length by model order"))
}
