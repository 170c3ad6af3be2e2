package routing

import (
	"fmt"
	"sort"

	"github.com/bodaroute/bodaroute/internal/models"
)

// RoadNetwork is the static adjacency-list road graph. It is immutable
// after construction and safe to share across concurrent searches.
type RoadNetwork struct {
	name      string
	nodes     map[string]models.Node
	adjacency map[string][]*models.Edge
	nodeIDs   []string
	edgeCount int
}

// NewRoadNetwork validates a network definition and builds the
// adjacency structure. Every edge endpoint must exist, distances must
// be positive, all multiplicative factors must be >= 1, and a road may
// not be shorter than the great-circle distance between its endpoints
// (the straight-line heuristic must stay a lower bound); any violation
// aborts with ErrMalformedGraph.
func NewRoadNetwork(def *models.NetworkDefinition) (*RoadNetwork, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrMalformedGraph)
	}

	n := &RoadNetwork{
		name:      def.Name,
		nodes:     make(map[string]models.Node, len(def.Nodes)),
		adjacency: make(map[string][]*models.Edge, len(def.Nodes)),
	}

	for _, node := range def.Nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("%w: node with empty id", ErrMalformedGraph)
		}
		if _, dup := n.nodes[node.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrMalformedGraph, node.ID)
		}
		n.nodes[node.ID] = node
		n.nodeIDs = append(n.nodeIDs, node.ID)
	}
	sort.Strings(n.nodeIDs)

	seen := make(map[models.EdgeKey]bool, len(def.Edges))
	for i := range def.Edges {
		edge := def.Edges[i]
		if err := n.validateEdge(&edge); err != nil {
			return nil, err
		}
		key := models.EdgeKey{From: edge.From, To: edge.To}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate edge %s->%s", ErrMalformedGraph, edge.From, edge.To)
		}
		seen[key] = true
		n.adjacency[edge.From] = append(n.adjacency[edge.From], &edge)
		n.edgeCount++
	}

	return n, nil
}

func (n *RoadNetwork) validateEdge(edge *models.Edge) error {
	from, ok := n.nodes[edge.From]
	if !ok {
		return fmt.Errorf("%w: edge %s->%s references missing node %q", ErrMalformedGraph, edge.From, edge.To, edge.From)
	}
	to, ok := n.nodes[edge.To]
	if !ok {
		return fmt.Errorf("%w: edge %s->%s references missing node %q", ErrMalformedGraph, edge.From, edge.To, edge.To)
	}
	if edge.Distance <= 0 {
		return fmt.Errorf("%w: edge %s->%s has non-positive distance %v", ErrMalformedGraph, edge.From, edge.To, edge.Distance)
	}
	// A road shorter than the straight line between its junctions would
	// let A* overestimate and return suboptimal routes. The tolerance
	// absorbs float rounding for distances derived from the same formula.
	if straight := from.Location.DistanceKm(to.Location); edge.Distance < straight*(1-1e-9) {
		return fmt.Errorf("%w: edge %s->%s distance %v is below the straight-line distance %v",
			ErrMalformedGraph, edge.From, edge.To, edge.Distance, straight)
	}
	if edge.TrafficFactor < 1 {
		return fmt.Errorf("%w: edge %s->%s has traffic factor %v < 1", ErrMalformedGraph, edge.From, edge.To, edge.TrafficFactor)
	}
	if edge.QualityFactor < 1 {
		return fmt.Errorf("%w: edge %s->%s has quality factor %v < 1", ErrMalformedGraph, edge.From, edge.To, edge.QualityFactor)
	}
	for vehicle, penalty := range edge.VehiclePenalties {
		if penalty < 1 {
			return fmt.Errorf("%w: edge %s->%s has %s penalty %v < 1", ErrMalformedGraph, edge.From, edge.To, vehicle, penalty)
		}
	}
	return nil
}

func (n *RoadNetwork) Name() string { return n.name }

func (n *RoadNetwork) NodeCount() int { return len(n.nodes) }

func (n *RoadNetwork) EdgeCount() int { return n.edgeCount }

func (n *RoadNetwork) HasNode(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Node returns the node for id, or ErrUnknownNode.
func (n *RoadNetwork) Node(id string) (models.Node, error) {
	node, ok := n.nodes[id]
	if !ok {
		return models.Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return node, nil
}

// NodeIDs returns all node identifiers in sorted order.
func (n *RoadNetwork) NodeIDs() []string { return n.nodeIDs }

// Neighbors returns the outgoing edges of a node in definition order.
// The returned slice is shared and must not be mutated.
func (n *RoadNetwork) Neighbors(id string) ([]*models.Edge, error) {
	if _, ok := n.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	return n.adjacency[id], nil
}

// HasEdge reports whether the directed edge from->to exists.
func (n *RoadNetwork) HasEdge(from, to string) bool {
	for _, edge := range n.adjacency[from] {
		if edge.To == to {
			return true
		}
	}
	return false
}
