package models

const (
	VehicleMotorcycle   = "motorcycle"
	VehicleThreeWheeler = "three_wheeler"

	AlgorithmDijkstra = "dijkstra"
	AlgorithmModified = "modified"
	AlgorithmAStar    = "astar"
	AlgorithmAdaptive = "adaptive"
	AlgorithmAll      = "all"

	HistoryBackendFile     = "file"
	HistoryBackendPostgres = "postgres"

	TopicFeedbackEvents   = "route_feedback_events"
	TopicComparisonEvents = "route_comparison_events"
)

// AlgorithmNames is the canonical execution order for comparisons.
// Experiment baselines are computed against the first entry.
var AlgorithmNames = []string{
	AlgorithmDijkstra,
	AlgorithmModified,
	AlgorithmAStar,
	AlgorithmAdaptive,
}

// VehicleTypes lists every vehicle class the cost model recognises.
var VehicleTypes = []string{
	VehicleMotorcycle,
	VehicleThreeWheeler,
}

func ValidVehicleType(vehicle string) bool {
	for _, v := range VehicleTypes {
		if v == vehicle {
			return true
		}
	}
	return false
}

func ValidAlgorithm(algorithm string) bool {
	if algorithm == AlgorithmAll {
		return true
	}
	for _, a := range AlgorithmNames {
		if a == algorithm {
			return true
		}
	}
	return false
}
