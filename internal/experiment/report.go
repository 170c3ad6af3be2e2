package experiment

import (
	"fmt"
	"io"

	"github.com/bodaroute/bodaroute/internal/models"
)

// WriteComparisonTable prints a human-readable summary of one
// experiment run, grouped by case, with per-variant improvement
// percentages against the plain Dijkstra baseline.
func WriteComparisonTable(w io.Writer, results []RunStats) {
	byCase := make(map[string][]RunStats)
	var order []string
	for _, r := range results {
		if _, seen := byCase[r.CaseLabel]; !seen {
			order = append(order, r.CaseLabel)
		}
		byCase[r.CaseLabel] = append(byCase[r.CaseLabel], r)
	}

	for _, label := range order {
		rows := byCase[label]
		fmt.Fprintf(w, "\nCase: %s (%s -> %s)\n", label, rows[0].Origin, rows[0].Destination)
		fmt.Fprintf(w, "%-10s %-18s %-10s %-12s %s\n", "algorithm", "time (us)", "nodes", "cost", "path")
		for _, r := range rows {
			fmt.Fprintf(w, "%-10s %8.1f ± %-7.1f %-10.1f %-12.3f %d\n",
				r.Algorithm, r.TimeMeanMicros, r.TimeStdMicros, r.NodesExploredMean, r.CostMean, r.PathLength)
		}

		baseline := findBaseline(rows)
		if baseline == nil {
			continue
		}
		for _, r := range rows {
			if r.Algorithm == baseline.Algorithm {
				continue
			}
			fmt.Fprintf(w, "  %s vs %s: time %+.1f%%, nodes %+.1f%%\n",
				r.Algorithm, baseline.Algorithm,
				improvement(r.TimeMeanMicros, baseline.TimeMeanMicros),
				improvement(r.NodesExploredMean, baseline.NodesExploredMean))
		}
	}
}

func findBaseline(rows []RunStats) *RunStats {
	for i := range rows {
		if rows[i].Algorithm == models.AlgorithmDijkstra {
			return &rows[i]
		}
	}
	return nil
}

func improvement(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (1 - value/baseline) * 100
}
