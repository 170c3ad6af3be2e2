package routing

import (
	"testing"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoadNetwork_BuildsAdjacency(t *testing.T) {
	network, err := NewRoadNetwork(testDefinition())
	require.NoError(t, err)

	assert.Equal(t, "diamond", network.Name())
	assert.Equal(t, 5, network.NodeCount())
	assert.Equal(t, 4, network.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, network.NodeIDs())

	edges, err := network.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "b", edges[0].To)
	assert.Equal(t, "c", edges[1].To)

	assert.True(t, network.HasEdge("a", "b"))
	assert.False(t, network.HasEdge("b", "a"))
	assert.True(t, network.HasNode("e"))
	assert.False(t, network.HasNode("z"))
}

func TestNewRoadNetwork_UnknownNodeLookups(t *testing.T) {
	network, err := NewRoadNetwork(testDefinition())
	require.NoError(t, err)

	_, err = network.Node("z")
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = network.Neighbors("z")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestNewRoadNetwork_RejectsMalformedDefinitions(t *testing.T) {
	base := func() *models.NetworkDefinition {
		return &models.NetworkDefinition{
			Nodes: []models.Node{{ID: "a"}, {ID: "b"}},
			Edges: []models.Edge{edge("a", "b", 1, 1)},
		}
	}

	tests := []struct {
		name   string
		mutate func(def *models.NetworkDefinition)
	}{
		{
			name:   "empty node id",
			mutate: func(def *models.NetworkDefinition) { def.Nodes[0].ID = "" },
		},
		{
			name:   "duplicate node id",
			mutate: func(def *models.NetworkDefinition) { def.Nodes[1].ID = "a" },
		},
		{
			name:   "dangling edge origin",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].From = "ghost" },
		},
		{
			name:   "dangling edge destination",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].To = "ghost" },
		},
		{
			name:   "zero distance",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].Distance = 0 },
		},
		{
			name:   "negative distance",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].Distance = -1 },
		},
		{
			name:   "traffic factor below one",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].TrafficFactor = 0.5 },
		},
		{
			name:   "quality factor below one",
			mutate: func(def *models.NetworkDefinition) { def.Edges[0].QualityFactor = 0.9 },
		},
		{
			name: "vehicle penalty below one",
			mutate: func(def *models.NetworkDefinition) {
				def.Edges[0].VehiclePenalties = map[string]float64{models.VehicleMotorcycle: 0.8}
			},
		},
		{
			name: "distance below straight line",
			// Junctions a degree of longitude apart but a 1 km road.
			mutate: func(def *models.NetworkDefinition) {
				def.Nodes[0].Location = models.Location{Lat: 0, Lon: 0}
				def.Nodes[1].Location = models.Location{Lat: 0, Lon: 1}
			},
		},
		{
			name: "duplicate edge",
			mutate: func(def *models.NetworkDefinition) {
				def.Edges = append(def.Edges, edge("a", "b", 2, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := base()
			tt.mutate(def)
			_, err := NewRoadNetwork(def)
			assert.ErrorIs(t, err, ErrMalformedGraph)
		})
	}
}

func TestNewRoadNetwork_AcceptsStraightLineDistance(t *testing.T) {
	a := models.Location{Lat: 0, Lon: 0}
	b := models.Location{Lat: 0, Lon: 0.01}
	def := &models.NetworkDefinition{
		Nodes: []models.Node{
			{ID: "a", Location: a},
			{ID: "b", Location: b},
		},
		// Exactly the great-circle distance, the tightest legal road.
		Edges: []models.Edge{edge("a", "b", a.DistanceKm(b), 1)},
	}
	_, err := NewRoadNetwork(def)
	assert.NoError(t, err)
}

func TestNewRoadNetwork_NilDefinition(t *testing.T) {
	_, err := NewRoadNetwork(nil)
	assert.ErrorIs(t, err, ErrMalformedGraph)
}
