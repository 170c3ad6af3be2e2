package history

import "github.com/bodaroute/bodaroute/internal/models"

// Summary describes the learned state at a glance. Reliability ranks
// edges by averageDelay + failureRate, so the most reliable edge is
// the one with the least combined slowdown and failure.
type Summary struct {
	EdgesTracked  int                       `json:"edgesTracked"`
	AverageDelay  float64                   `json:"averageDelay"`
	MostReliable  *models.EdgeHistoryRecord `json:"mostReliable,omitempty"`
	LeastReliable *models.EdgeHistoryRecord `json:"leastReliable,omitempty"`
}

// Summarize reports aggregate statistics over every tracked edge.
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{EdgesTracked: len(s.records)}
	if len(s.records) == 0 {
		return summary
	}

	var best, worst *models.EdgeHistoryRecord
	var totalDelay float64
	for _, rec := range s.records {
		totalDelay += rec.AverageDelay
		if best == nil || reliabilityScore(rec) < reliabilityScore(best) {
			best = rec
		}
		if worst == nil || reliabilityScore(rec) > reliabilityScore(worst) {
			worst = rec
		}
	}

	bestCopy, worstCopy := *best, *worst
	summary.AverageDelay = totalDelay / float64(len(s.records))
	summary.MostReliable = &bestCopy
	summary.LeastReliable = &worstCopy
	return summary
}

func reliabilityScore(rec *models.EdgeHistoryRecord) float64 {
	return rec.AverageDelay + rec.FailureRate
}
