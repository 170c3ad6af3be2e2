package models

// EdgeKey identifies a directed edge in the history store.
type EdgeKey struct {
	From string
	To   string
}

// EdgeHistoryRecord accumulates feedback statistics for one directed
// edge. AverageDelay and FailureRate are derived from the raw counters
// on every update so readers never have to recompute them.
//
// Delay is relative: (actual - expected) / expected for each completed
// route through the edge. It can be negative when deliveries run ahead
// of the estimate; the cost model clamps the resulting penalty at 1.0.
type EdgeHistoryRecord struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Samples      int     `json:"samples"`
	TotalDelay   float64 `json:"total_delay"`
	AverageDelay float64 `json:"average_delay"`
	Failures     int     `json:"failures"`
	FailureRate  float64 `json:"failure_rate"`
}

func (r *EdgeHistoryRecord) Key() EdgeKey {
	return EdgeKey{From: r.From, To: r.To}
}

// EdgeHistorySnapshot is a consistent value-copy of the store taken at
// a point in time. Searches read from a snapshot so a concurrent
// feedback write can never be observed half-applied.
type EdgeHistorySnapshot map[EdgeKey]EdgeHistoryRecord

// Lookup returns the record for a directed edge, or nil if the edge has
// never received feedback.
func (s EdgeHistorySnapshot) Lookup(from, to string) *EdgeHistoryRecord {
	if s == nil {
		return nil
	}
	if rec, ok := s[EdgeKey{From: from, To: to}]; ok {
		return &rec
	}
	return nil
}
