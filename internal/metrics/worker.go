package metrics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// statSource is satisfied by *pgxpool.Pool.
type statSource interface {
	Stat() *pgxpool.Stat
}

// PoolStatsWorker periodically samples connection pool statistics.
type PoolStatsWorker struct {
	pool     statSource
	metrics  *Metrics
	interval time.Duration
	logger   zerolog.Logger
}

func NewPoolStatsWorker(pool statSource, m *Metrics, interval time.Duration, logger zerolog.Logger) *PoolStatsWorker {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &PoolStatsWorker{
		pool:     pool,
		metrics:  m,
		interval: interval,
		logger:   logger.With().Str("component", "pool_stats_worker").Logger(),
	}
}

// Run blocks until context cancellation.
func (w *PoolStatsWorker) Run(ctx context.Context) error {
	if w.pool == nil || w.metrics == nil {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// run immediately
	w.tick()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("pool stats worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *PoolStatsWorker) tick() {
	w.metrics.RecordPoolStats(w.pool.Stat())
}
