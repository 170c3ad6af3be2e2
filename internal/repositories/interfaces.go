package repositories

import (
	"context"

	"github.com/bodaroute/bodaroute/internal/models"
)

// EdgeHistoryRepository is the durable layer under the in-memory edge
// history store. Load runs once at startup (an absent store yields an
// empty map); Save rewrites the learned state wholesale, or with an
// equivalent durable upsert, after every feedback submission.
//
// Implementations must not retain the maps they are handed: the store
// calls Save while holding its write lock.
type EdgeHistoryRepository interface {
	Load(ctx context.Context) (map[models.EdgeKey]*models.EdgeHistoryRecord, error)
	Save(ctx context.Context, records map[models.EdgeKey]*models.EdgeHistoryRecord) error
}
