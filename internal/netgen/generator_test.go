package netgen

import (
	"testing"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorConfig(seed int) *models.Config {
	return &models.Config{
		Seed:             seed,
		CityName:         "Dar es Salaam",
		CityLat:          -6.7924,
		CityLon:          39.2083,
		UrbanRadius:      8.0,
		GeneratorNodes:   25,
		GeneratorDegree:  3,
		GeneratorOneWay:  0.2,
		GeneratorMaxTraf: 2.5,
	}
}

func TestGenerate_ProducesValidNetwork(t *testing.T) {
	def, err := New(generatorConfig(42)).Generate()
	require.NoError(t, err)

	assert.Len(t, def.Nodes, 25)
	assert.NotEmpty(t, def.Edges)

	// The definition must pass full graph validation as-is.
	network, err := routing.NewRoadNetwork(def)
	require.NoError(t, err)
	assert.Equal(t, 25, network.NodeCount())

	for _, e := range def.Edges {
		assert.Positive(t, e.Distance)
		assert.GreaterOrEqual(t, e.TrafficFactor, 1.0)
		assert.GreaterOrEqual(t, e.QualityFactor, 1.0)
		for vehicle, penalty := range e.VehiclePenalties {
			assert.True(t, models.ValidVehicleType(vehicle))
			assert.GreaterOrEqual(t, penalty, 1.0)
		}
	}
}

func TestGenerate_IsDeterministicPerSeed(t *testing.T) {
	first, err := New(generatorConfig(7)).Generate()
	require.NoError(t, err)
	second, err := New(generatorConfig(7)).Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := New(generatorConfig(8)).Generate()
	require.NoError(t, err)
	assert.NotEqual(t, first.Edges, other.Edges)
}

func TestGenerate_NetworkIsConnected(t *testing.T) {
	def, err := New(generatorConfig(3)).Generate()
	require.NoError(t, err)

	// Every junction is reachable from n0 over the undirected graph.
	adjacency := make(map[string][]string)
	for _, e := range def.Edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
		adjacency[e.To] = append(adjacency[e.To], e.From)
	}
	seen := map[string]bool{"n0": true}
	queue := []string{"n0"}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[current] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	assert.Len(t, seen, len(def.Nodes))
}

func TestGenerate_NodesStayInsideUrbanRadius(t *testing.T) {
	cfg := generatorConfig(11)
	def, err := New(cfg).Generate()
	require.NoError(t, err)

	center := models.Location{Lat: cfg.CityLat, Lon: cfg.CityLon}
	for _, n := range def.Nodes {
		// Small tolerance for the flat-earth offset approximation.
		assert.LessOrEqual(t, center.DistanceKm(n.Location), cfg.UrbanRadius*1.01, n.ID)
	}
}

func TestGenerate_RejectsTooFewNodes(t *testing.T) {
	cfg := generatorConfig(1)
	cfg.GeneratorNodes = 1
	_, err := New(cfg).Generate()
	assert.Error(t, err)
}
