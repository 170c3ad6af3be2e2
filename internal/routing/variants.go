package routing

import (
	"fmt"

	"github.com/bodaroute/bodaroute/internal/models"
)

// FindRoute runs a single algorithm variant for one routing request.
// The history snapshot is only consulted by the adaptive variant and
// may be nil. When the destination is unreachable the returned error
// matches ErrNoRoute and the result still carries the search metrics.
//
// Variant wiring:
//
//   - dijkstra: raw distance, no heuristic (the baseline).
//   - modified: full multi-factor static cost, no heuristic.
//   - astar:    full multi-factor static cost plus a great-circle
//     heuristic. Straight-line distance is a lower bound on any edge
//     cost because every factor is >= 1, so the heuristic is admissible
//     and the variant stays optimal under the modified cost function.
//   - adaptive: static cost times the learned historical penalty. The
//     penalty is not distance-like, so no heuristic is assumed.
func (e *Engine) FindRoute(req models.RoutingRequest, history models.EdgeHistorySnapshot) (*models.RouteResult, error) {
	if !models.ValidVehicleType(req.VehicleType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVehicle, req.VehicleType)
	}

	staticCost := func(edge *models.Edge) (float64, error) {
		return e.cost.BaseCost(edge, req.VehicleType)
	}

	var edgeCost edgeCostFunc
	var heuristic heuristicFunc

	switch req.Algorithm {
	case models.AlgorithmDijkstra:
		edgeCost = func(edge *models.Edge) (float64, error) {
			return edge.Distance, nil
		}
	case models.AlgorithmModified:
		edgeCost = staticCost
	case models.AlgorithmAStar:
		edgeCost = staticCost
		goal, err := e.network.Node(req.Destination)
		if err != nil {
			return nil, err
		}
		heuristic = func(node string) float64 {
			n, err := e.network.Node(node)
			if err != nil {
				return 0
			}
			return n.Location.DistanceKm(goal.Location)
		}
	case models.AlgorithmAdaptive:
		edgeCost = func(edge *models.Edge) (float64, error) {
			return e.cost.Cost(edge, req.VehicleType, history.Lookup(edge.From, edge.To))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}

	result, err := e.findPath(req.Origin, req.Destination, edgeCost, heuristic)
	if err != nil {
		return nil, err
	}
	result.Algorithm = req.Algorithm
	if !result.Found {
		return result, fmt.Errorf("%w: %s -> %s", ErrNoRoute, req.Origin, req.Destination)
	}
	return result, nil
}
