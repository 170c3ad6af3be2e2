package experiment

import (
	"testing"

	"github.com/bodaroute/bodaroute/internal/history"
	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchEngine(t *testing.T) *routing.Engine {
	t.Helper()
	def := &models.NetworkDefinition{
		Name:  "bench",
		Nodes: []models.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "island"}},
		Edges: []models.Edge{
			{From: "a", To: "b", Distance: 1, TrafficFactor: 4, QualityFactor: 1},
			{From: "b", To: "d", Distance: 1, TrafficFactor: 1, QualityFactor: 1},
			{From: "a", To: "c", Distance: 2, TrafficFactor: 1, QualityFactor: 1},
			{From: "c", To: "d", Distance: 2, TrafficFactor: 1, QualityFactor: 1},
		},
	}
	network, err := routing.NewRoadNetwork(def)
	require.NoError(t, err)
	return routing.NewEngine(network)
}

func TestComparator_RunCoversEveryCaseAndVariant(t *testing.T) {
	c := NewComparator(benchEngine(t), history.NewVolatile(), models.VehicleMotorcycle, 5).WithoutProgress()

	cases := []Case{
		{Label: "short hop", Origin: "a", Destination: "b"},
		{Label: "cross town", Origin: "a", Destination: "d"},
	}
	results, err := c.Run(cases)
	require.NoError(t, err)
	require.Len(t, results, len(cases)*len(models.AlgorithmNames))

	runID := results[0].RunID
	require.NotEmpty(t, runID)
	for _, r := range results {
		assert.Equal(t, runID, r.RunID)
		assert.Equal(t, int64(5), r.Runs)
		assert.True(t, r.FoundRoute, r.Algorithm)
		assert.Positive(t, r.CostMean)
		assert.Positive(t, r.NodesExploredMean)
		assert.GreaterOrEqual(t, r.TimeMaxMicros, r.TimeMinMicros)
		assert.GreaterOrEqual(t, r.PathLength, int64(2))
	}

	// Same request repeated: identical paths, so cost never varies.
	for _, r := range results {
		assert.Zero(t, r.CostStd, r.Algorithm)
	}
}

func TestComparator_NoRouteYieldsRowNotError(t *testing.T) {
	c := NewComparator(benchEngine(t), nil, models.VehicleMotorcycle, 3).WithoutProgress()

	results, err := c.Run([]Case{{Label: "unreachable", Origin: "a", Destination: "island"}})
	require.NoError(t, err)
	require.Len(t, results, len(models.AlgorithmNames))
	for _, r := range results {
		assert.False(t, r.FoundRoute)
		assert.Zero(t, r.PathLength)
	}
}

func TestComparator_StructuralErrorsAbort(t *testing.T) {
	c := NewComparator(benchEngine(t), nil, models.VehicleMotorcycle, 3).WithoutProgress()

	_, err := c.Run([]Case{{Label: "ghost", Origin: "a", Destination: "nowhere"}})
	assert.ErrorIs(t, err, routing.ErrUnknownNode)
}

func TestComparator_RejectsBadParameters(t *testing.T) {
	engine := benchEngine(t)

	_, err := NewComparator(engine, nil, models.VehicleMotorcycle, 0).WithoutProgress().
		Run([]Case{{Label: "x", Origin: "a", Destination: "d"}})
	assert.Error(t, err)

	_, err = NewComparator(engine, nil, models.VehicleMotorcycle, 3).WithoutProgress().Run(nil)
	assert.Error(t, err)
}
