// Package experiment benchmarks the four routing variants against each
// other: identical cases, identical network, identical history
// snapshot, repeated enough times for the timing statistics to mean
// something.
package experiment

import (
	"errors"
	"fmt"
	"log"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
)

// Comparator runs every algorithm variant over a set of cases and
// aggregates per-variant statistics. The history snapshot is taken
// once per Run, so all cases and variants see the same learned state.
type Comparator struct {
	engine   *routing.Engine
	history  routing.HistorySource
	vehicle  string
	runs     int
	progress bool
}

func NewComparator(engine *routing.Engine, history routing.HistorySource, vehicle string, runs int) *Comparator {
	return &Comparator{
		engine:   engine,
		history:  history,
		vehicle:  vehicle,
		runs:     runs,
		progress: true,
	}
}

// WithoutProgress disables the terminal progress bar (tests).
func (c *Comparator) WithoutProgress() *Comparator {
	c.progress = false
	return c
}

// Run executes runs repetitions of every variant for every case. A
// variant that finds no route yields a row with FoundRoute=false; any
// structural error (unknown node, unsupported vehicle) aborts the
// whole experiment.
func (c *Comparator) Run(cases []Case) ([]RunStats, error) {
	if c.runs <= 0 {
		return nil, fmt.Errorf("experiment: runs must be positive, got %d", c.runs)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("experiment: no cases given")
	}

	runID := cuid.New()
	var snapshot models.EdgeHistorySnapshot
	if c.history != nil {
		snapshot = c.history.Snapshot()
	}

	results := make([]RunStats, 0, len(cases)*len(models.AlgorithmNames))
	for _, cs := range cases {
		for _, algorithm := range models.AlgorithmNames {
			stats, err := c.runVariant(runID, cs, algorithm, snapshot)
			if err != nil {
				return nil, err
			}
			results = append(results, *stats)
		}
	}
	return results, nil
}

func (c *Comparator) runVariant(runID string, cs Case, algorithm string, snapshot models.EdgeHistorySnapshot) (*RunStats, error) {
	req := models.RoutingRequest{
		Origin:      cs.Origin,
		Destination: cs.Destination,
		VehicleType: c.vehicle,
		Algorithm:   algorithm,
	}

	var bar *progressbar.ProgressBar
	if c.progress {
		bar = progressbar.Default(int64(c.runs), fmt.Sprintf("%-8s %s->%s", algorithm, cs.Origin, cs.Destination))
	}

	times := make([]float64, 0, c.runs)
	nodes := make([]float64, 0, c.runs)
	costs := make([]float64, 0, c.runs)
	var pathLength int
	found := true

	for run := 0; run < c.runs; run++ {
		result, err := c.engine.FindRoute(req, snapshot)
		if err != nil && !errors.Is(err, routing.ErrNoRoute) {
			return nil, err
		}
		if !result.Found {
			found = false
		}
		times = append(times, float64(result.ElapsedMicros))
		nodes = append(nodes, float64(result.NodesExplored))
		costs = append(costs, result.TotalCost)
		pathLength = len(result.Path)
		if bar != nil {
			bar.Add(1)
		}
	}

	if !found {
		log.Printf("Experiment case %q: %s found no route %s->%s", cs.Label, algorithm, cs.Origin, cs.Destination)
	}

	timeMin, timeMax := minMax(times)
	return &RunStats{
		RunID:             runID,
		CaseLabel:         cs.Label,
		Algorithm:         algorithm,
		Origin:            cs.Origin,
		Destination:       cs.Destination,
		Runs:              int64(c.runs),
		FoundRoute:        found,
		TimeMeanMicros:    mean(times),
		TimeStdMicros:     stdDev(times),
		TimeMedianMicros:  median(times),
		TimeMinMicros:     timeMin,
		TimeMaxMicros:     timeMax,
		NodesExploredMean: mean(nodes),
		NodesExploredStd:  stdDev(nodes),
		CostMean:          mean(costs),
		CostStd:           stdDev(costs),
		PathLength:        int64(pathLength),
	}, nil
}
