package routing

import (
	"errors"
	"fmt"

	"github.com/bodaroute/bodaroute/internal/models"
)

// HistorySource supplies a consistent point-in-time view of learned
// edge statistics. history.Store satisfies it; a nil source means
// routing without history (the adaptive variant then degenerates to
// the modified one).
type HistorySource interface {
	Snapshot() models.EdgeHistorySnapshot
}

// Optimizer answers one routing request with every requested variant,
// all run against the same network and the same history snapshot. It
// never mutates the history store.
type Optimizer struct {
	engine  *Engine
	history HistorySource
}

func NewOptimizer(engine *Engine, history HistorySource) *Optimizer {
	return &Optimizer{engine: engine, history: history}
}

// Optimize validates the request once, then runs either the requested
// variant or all four. A variant that finds no route is recorded in
// NoRoute rather than failing the comparison; structural errors
// (unknown node, unsupported vehicle, unknown algorithm) abort the
// whole call.
func (o *Optimizer) Optimize(req models.RoutingRequest) (*models.RouteComparison, error) {
	if _, err := o.engine.network.Node(req.Origin); err != nil {
		return nil, err
	}
	if _, err := o.engine.network.Node(req.Destination); err != nil {
		return nil, err
	}
	if !models.ValidVehicleType(req.VehicleType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVehicle, req.VehicleType)
	}
	if !models.ValidAlgorithm(req.Algorithm) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}

	var snapshot models.EdgeHistorySnapshot
	if o.history != nil {
		snapshot = o.history.Snapshot()
	}

	variants := models.AlgorithmNames
	if req.Algorithm != models.AlgorithmAll {
		variants = []string{req.Algorithm}
	}

	comparison := &models.RouteComparison{
		Request: req,
		Results: make(map[string]*models.RouteResult, len(variants)),
	}

	for _, variant := range variants {
		variantReq := req
		variantReq.Algorithm = variant
		result, err := o.engine.FindRoute(variantReq, snapshot)
		if err != nil && !errors.Is(err, ErrNoRoute) {
			return nil, err
		}
		if !result.Found {
			comparison.NoRoute = append(comparison.NoRoute, variant)
		}
		comparison.Results[variant] = result
	}

	return comparison, nil
}
