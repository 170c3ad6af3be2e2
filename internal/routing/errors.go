package routing

import "errors"

// Sentinel errors surfaced by the routing core. Callers match them with
// errors.Is; wrapped variants carry the offending identifier.
var (
	// ErrUnknownNode indicates a node identifier that is not present in
	// the loaded road network.
	ErrUnknownNode = errors.New("routing: node not found in network")

	// ErrUnsupportedVehicle indicates a vehicle type the cost model does
	// not recognise.
	ErrUnsupportedVehicle = errors.New("routing: unsupported vehicle type")

	// ErrUnknownAlgorithm indicates an algorithm name outside the four
	// supported variants.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm variant")

	// ErrMalformedGraph indicates a network definition that failed
	// construction-time validation. Fatal at load.
	ErrMalformedGraph = errors.New("routing: malformed network definition")

	// ErrNoRoute indicates the destination is unreachable from the
	// origin. A normal terminal search outcome, reported per variant;
	// the aggregate comparison still succeeds.
	ErrNoRoute = errors.New("routing: no route between origin and destination")

	// ErrInvalidFeedback indicates a completed-route report that does
	// not describe a valid walk or carries a non-positive expected
	// duration.
	ErrInvalidFeedback = errors.New("routing: invalid route feedback")
)
