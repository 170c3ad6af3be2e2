package experiment

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats(runID string) []RunStats {
	return []RunStats{
		{
			RunID: runID, CaseLabel: "cross town", Algorithm: models.AlgorithmDijkstra,
			Origin: "a", Destination: "d", Runs: 100, FoundRoute: true,
			TimeMeanMicros: 120.5, TimeStdMicros: 10.1, TimeMedianMicros: 118,
			TimeMinMicros: 100, TimeMaxMicros: 180,
			NodesExploredMean: 4, CostMean: 2, PathLength: 3,
		},
		{
			RunID: runID, CaseLabel: "cross town", Algorithm: models.AlgorithmAStar,
			Origin: "a", Destination: "d", Runs: 100, FoundRoute: true,
			TimeMeanMicros: 90.2, TimeStdMicros: 8.4, TimeMedianMicros: 89,
			TimeMinMicros: 70, TimeMaxMicros: 140,
			NodesExploredMean: 3, CostMean: 4, PathLength: 3,
		},
	}
}

func TestCSVResultsWriter_WritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "timing.csv")
	w, err := NewCSVResultsWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteResults(sampleStats("run-1")))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "run-1", rows[1][0])
	assert.Equal(t, models.AlgorithmDijkstra, rows[1][2])
	assert.Equal(t, "120.500", rows[1][7])
	assert.Equal(t, "3", rows[2][16])
}

func TestNewResultsWriter_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	cfg := &models.Config{OutputPath: dir, OutputFolder: "bench", OutputFormat: "csv", OutputDestination: "local"}
	w, err := NewResultsWriter(cfg, "run-2")
	require.NoError(t, err)
	require.NoError(t, w.WriteResults(sampleStats("run-2")))
	require.NoError(t, w.Close())

	entries, err := os.ReadDir(filepath.Join(dir, "bench"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "timing_results_run-2"))

	cfg.OutputFormat = "xml"
	_, err = NewResultsWriter(cfg, "run-3")
	assert.Error(t, err)
}

func TestParquetResultsWriter_LocalRoundTripFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &models.Config{OutputPath: dir, OutputFolder: "bench", OutputFormat: "parquet", OutputDestination: "local"}

	w, err := NewResultsWriter(cfg, "run-4")
	require.NoError(t, err)
	require.NoError(t, w.WriteResults(sampleStats("run-4")))
	require.NoError(t, w.Close())

	info, err := os.Stat(filepath.Join(dir, "bench", "timing_results_run-4.parquet"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteComparisonTable_ReportsImprovementAgainstBaseline(t *testing.T) {
	var sb strings.Builder
	WriteComparisonTable(&sb, sampleStats("run-5"))
	out := sb.String()

	assert.Contains(t, out, "Case: cross town (a -> d)")
	assert.Contains(t, out, models.AlgorithmDijkstra)
	// astar mean 90.2 vs baseline 120.5: about 25% faster.
	assert.Contains(t, out, "astar vs dijkstra: time +25.1%, nodes +25.0%")
}
