package models

// Node is a junction in the road network. Coordinates are only used as
// the A* heuristic input; Name is decorative (generated networks carry
// district names for readability).
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Location Location `json:"location"`
}

// Edge is a directed road segment. An undirected road appears as two
// edges. All multiplicative factors are >= 1 so that edge cost never
// drops below raw distance, which keeps the A* heuristic admissible.
type Edge struct {
	From             string             `json:"from"`
	To               string             `json:"to"`
	Distance         float64            `json:"distance"`
	TrafficFactor    float64            `json:"trafficFactor"`
	QualityFactor    float64            `json:"qualityFactor"`
	VehiclePenalties map[string]float64 `json:"vehiclePenalties,omitempty"`
}

// NetworkDefinition is the on-disk road network layout, loaded once at
// startup and immutable thereafter.
type NetworkDefinition struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
