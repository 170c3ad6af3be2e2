package postgres

import (
	"context"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EdgeHistoryRepository keeps learned edge statistics in Postgres,
// keyed by the directed edge pair. Save upserts every record in one
// transaction, which gives the same never-partially-visible guarantee
// as the file backend's atomic rename.
type EdgeHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewEdgeHistoryRepository(pool *pgxpool.Pool) *EdgeHistoryRepository {
	return &EdgeHistoryRepository{pool: pool}
}

// Migrate creates the edge_history table if it does not exist.
func (r *EdgeHistoryRepository) Migrate(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS edge_history (
            from_node     TEXT             NOT NULL,
            to_node       TEXT             NOT NULL,
            samples       INTEGER          NOT NULL,
            total_delay   DOUBLE PRECISION NOT NULL,
            average_delay DOUBLE PRECISION NOT NULL,
            failures      INTEGER          NOT NULL,
            failure_rate  DOUBLE PRECISION NOT NULL,
            PRIMARY KEY (from_node, to_node)
        )
    `
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *EdgeHistoryRepository) Load(ctx context.Context) (map[models.EdgeKey]*models.EdgeHistoryRecord, error) {
	query := `
        SELECT from_node, to_node, samples, total_delay, average_delay, failures, failure_rate
        FROM edge_history
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[models.EdgeKey]*models.EdgeHistoryRecord)
	for rows.Next() {
		rec := &models.EdgeHistoryRecord{}
		err := rows.Scan(
			&rec.From,
			&rec.To,
			&rec.Samples,
			&rec.TotalDelay,
			&rec.AverageDelay,
			&rec.Failures,
			&rec.FailureRate,
		)
		if err != nil {
			return nil, err
		}
		records[rec.Key()] = rec
	}
	return records, rows.Err()
}

func (r *EdgeHistoryRepository) Save(ctx context.Context, records map[models.EdgeKey]*models.EdgeHistoryRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO edge_history (
            from_node, to_node, samples, total_delay, average_delay, failures, failure_rate
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7
        )
        ON CONFLICT (from_node, to_node) DO UPDATE SET
            samples       = EXCLUDED.samples,
            total_delay   = EXCLUDED.total_delay,
            average_delay = EXCLUDED.average_delay,
            failures      = EXCLUDED.failures,
            failure_rate  = EXCLUDED.failure_rate
    `
	for _, rec := range records {
		_, err = tx.Exec(ctx, query,
			rec.From,
			rec.To,
			rec.Samples,
			rec.TotalDelay,
			rec.AverageDelay,
			rec.Failures,
			rec.FailureRate,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *EdgeHistoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM edge_history").Scan(&count)
	return count, err
}

func (r *EdgeHistoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE edge_history")
	return err
}
