package cmd

import (
	"context"
	"fmt"

	"github.com/bodaroute/bodaroute/internal/history"
	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/producers"
	"github.com/bodaroute/bodaroute/internal/repositories"
	"github.com/bodaroute/bodaroute/internal/repositories/file"
	"github.com/bodaroute/bodaroute/internal/repositories/postgres"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/jackc/pgx/v5/pgxpool"
)

// runtime bundles everything a subcommand needs: parsed config, the
// loaded road network, the search engine and the edge history store.
type runtime struct {
	config  *models.Config
	network *routing.RoadNetwork
	engine  *routing.Engine
	store   *history.Store
	pool    *pgxpool.Pool
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	network, err := routing.LoadNetworkFile(cfg.NetworkFile)
	if err != nil {
		return nil, fmt.Errorf("loading road network: %w", err)
	}

	rt := &runtime{config: cfg, network: network, engine: routing.NewEngine(network)}

	var repo repositories.EdgeHistoryRepository
	switch cfg.HistoryBackend {
	case models.HistoryBackendFile:
		repo = file.NewEdgeHistoryRepository(cfg.HistoryFile)
	case models.HistoryBackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		pgRepo := postgres.NewEdgeHistoryRepository(pool)
		if err := pgRepo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrating edge history schema: %w", err)
		}
		rt.pool = pool
		repo = pgRepo
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.HistoryBackend)
	}

	store, err := history.Load(ctx, repo)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("loading edge history: %w", err)
	}
	rt.store = store
	return rt, nil
}

func (r *runtime) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// newEventSink returns a Kafka producer when event publishing is
// enabled, or nil when routing should stay local-only.
func newEventSink(cfg *models.Config) (*producers.SaramaProducer, error) {
	if !cfg.KafkaEnabled {
		return nil, nil
	}
	return producers.NewSaramaProducer(cfg)
}
