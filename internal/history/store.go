// Package history owns the mutable learned state of the routing
// engine: per-edge delay and failure statistics accumulated from
// completed routes.
//
// The store is the only shared mutable resource in the system, so it
// carries the synchronization discipline the rest of the core relies
// on: writes are serialized by a per-store mutex and the durable write
// happens inside the critical section, with the in-memory update
// rolled back if persistence fails. Reads hand out value-copy
// snapshots, so a search always sees a consistent history as of search
// start.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/repositories"
)

// ErrPersistence indicates the durable write of learned history failed.
// The in-memory store is left exactly as it was before the update.
var ErrPersistence = errors.New("history: durable write failed")

// Store is the in-memory edge-history table backed by an optional
// durable repository. A nil repository gives a volatile store, which
// tests and ad-hoc experiments use.
type Store struct {
	mu      sync.RWMutex
	records map[models.EdgeKey]*models.EdgeHistoryRecord
	repo    repositories.EdgeHistoryRepository
}

// Load builds a store from the durable layer. An absent or empty
// backing store is not an error; learning simply starts from scratch.
func Load(ctx context.Context, repo repositories.EdgeHistoryRepository) (*Store, error) {
	s := &Store{
		records: make(map[models.EdgeKey]*models.EdgeHistoryRecord),
		repo:    repo,
	}
	if repo == nil {
		return s, nil
	}
	records, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading edge history: %w", err)
	}
	if records != nil {
		s.records = records
	}
	return s, nil
}

// NewVolatile returns a store with no durable backing.
func NewVolatile() *Store {
	return &Store{records: make(map[models.EdgeKey]*models.EdgeHistoryRecord)}
}

// Len returns the number of edges with recorded history.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Lookup returns a copy of the record for a directed edge.
func (s *Store) Lookup(from, to string) (models.EdgeHistoryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[models.EdgeKey{From: from, To: to}]
	if !ok {
		return models.EdgeHistoryRecord{}, false
	}
	return *rec, true
}

// Snapshot returns a value-copy of every record, consistent as of the
// call. Searches read exclusively from snapshots.
func (s *Store) Snapshot() models.EdgeHistorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(models.EdgeHistorySnapshot, len(s.records))
	for key, rec := range s.records {
		snapshot[key] = *rec
	}
	return snapshot
}

// RecordTraversals folds one completed route's outcome into every
// listed edge: sample count up by one, delay added to the running
// total (the average is a plain cumulative mean), failure counters
// updated when the route did not succeed. The whole store is then
// persisted; if that fails the update is rolled back and the error
// wraps ErrPersistence.
func (s *Store) RecordTraversals(ctx context.Context, edges []models.EdgeKey, delay float64, succeeded bool) error {
	if len(edges) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Remember prior values of the touched records so a failed durable
	// write leaves memory consistent with disk.
	previous := make(map[models.EdgeKey]*models.EdgeHistoryRecord, len(edges))
	for _, key := range edges {
		if rec, ok := s.records[key]; ok {
			cp := *rec
			previous[key] = &cp
		} else {
			previous[key] = nil
		}
	}

	for _, key := range edges {
		rec, ok := s.records[key]
		if !ok {
			rec = &models.EdgeHistoryRecord{From: key.From, To: key.To}
			s.records[key] = rec
		}
		rec.Samples++
		rec.TotalDelay += delay
		rec.AverageDelay = rec.TotalDelay / float64(rec.Samples)
		if !succeeded {
			rec.Failures++
		}
		rec.FailureRate = float64(rec.Failures) / float64(rec.Samples)
	}

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, s.records); err != nil {
		for key, prior := range previous {
			if prior == nil {
				delete(s.records, key)
			} else {
				s.records[key] = prior
			}
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
