package models

// RoutingRequest is one routing call from the orchestration layer.
type RoutingRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	VehicleType string `json:"vehicleType"`
	Algorithm   string `json:"algorithm"`
}

// RouteResult is the outcome of a single search. Path is empty when no
// route exists; Found distinguishes that from a zero-length route.
type RouteResult struct {
	Algorithm     string   `json:"algorithm"`
	Found         bool     `json:"found"`
	Path          []string `json:"path,omitempty"`
	TotalCost     float64  `json:"totalCost"`
	NodesExplored int      `json:"nodesExplored"`
	ElapsedMicros int64    `json:"elapsedMicros"`
}

// RouteComparison holds one RouteResult per algorithm variant, all
// computed against the same network and history snapshot. NoRoute lists
// the variants that could not reach the destination; the comparison as
// a whole still succeeds in that case.
type RouteComparison struct {
	Request RoutingRequest          `json:"request"`
	Results map[string]*RouteResult `json:"results"`
	NoRoute []string                `json:"noRoute,omitempty"`
}

// RouteFeedback is a completed-route report from a delivery collaborator.
type RouteFeedback struct {
	Path             []string `json:"path"`
	ActualDuration   float64  `json:"actualDuration"`
	ExpectedDuration float64  `json:"expectedDuration"`
	Succeeded        bool     `json:"succeeded"`
}
