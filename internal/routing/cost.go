package routing

import (
	"fmt"
	"math"

	"github.com/bodaroute/bodaroute/internal/models"
)

// Tunables for the historical penalty. HistoricalWeight controls how
// much learned statistics influence routing; MinHistorySamples is the
// number of observations required before history applies at all;
// ConfidenceSaturation is the sample count at which confidence reaches 1.
const (
	HistoricalWeight     = 0.3
	MinHistorySamples    = 3
	ConfidenceSaturation = 10.0
)

// CostModel computes the traversal cost of a single edge from its
// static attributes, a vehicle type and, optionally, learned history.
// It is stateless and safe for concurrent use.
type CostModel struct {
	historicalWeight float64
	minSamples       int
	saturation       float64
}

func NewCostModel() *CostModel {
	return &CostModel{
		historicalWeight: HistoricalWeight,
		minSamples:       MinHistorySamples,
		saturation:       ConfidenceSaturation,
	}
}

// VehiclePenalty resolves the per-vehicle penalty factor for an edge.
// A recognised vehicle missing from the edge's penalty map defaults to
// 1. Unrecognised vehicle types fail with ErrUnsupportedVehicle.
func (m *CostModel) VehiclePenalty(edge *models.Edge, vehicle string) (float64, error) {
	if !models.ValidVehicleType(vehicle) {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVehicle, vehicle)
	}
	if penalty, ok := edge.VehiclePenalties[vehicle]; ok {
		return penalty, nil
	}
	return 1.0, nil
}

// BaseCost is the static multi-factor cost:
// distance x traffic x quality x vehicle penalty.
func (m *CostModel) BaseCost(edge *models.Edge, vehicle string) (float64, error) {
	penalty, err := m.VehiclePenalty(edge, vehicle)
	if err != nil {
		return 0, err
	}
	return edge.Distance * edge.TrafficFactor * edge.QualityFactor * penalty, nil
}

// Cost applies the historical penalty on top of BaseCost when a record
// with enough samples is supplied. The result is always strictly
// positive and never below BaseCost's raw-distance lower bound: every
// factor is >= 1 by construction and the historical multiplier is
// clamped at 1.
func (m *CostModel) Cost(edge *models.Edge, vehicle string, record *models.EdgeHistoryRecord) (float64, error) {
	base, err := m.BaseCost(edge, vehicle)
	if err != nil {
		return 0, err
	}
	return base * m.historicalPenalty(record), nil
}

// Confidence maps a sample count to [0,1], scaling linearly and
// saturating at ConfidenceSaturation samples.
func (m *CostModel) Confidence(samples int) float64 {
	return math.Min(float64(samples)/m.saturation, 1.0)
}

func (m *CostModel) historicalPenalty(record *models.EdgeHistoryRecord) float64 {
	if record == nil || record.Samples < m.minSamples {
		return 1.0
	}
	confidence := m.Confidence(record.Samples)
	penalty := 1.0 + m.historicalWeight*confidence*(record.AverageDelay+2.0*record.FailureRate)
	// Negative average delay (routes running ahead of the estimate) can
	// pull the multiplier below 1; clamp so cost keeps raw distance as
	// its lower bound.
	return math.Max(penalty, 1.0)
}
