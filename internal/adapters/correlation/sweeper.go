package correlation

import (
	"context"
	"time"

	"go.trai.ch/clustertap/internal/core/ports"
)

// Sweeper periodically evicts expired entries from a correlation cache.
type Sweeper struct {
	cache    ports.CorrelationCache
	interval time.Duration
	logger   ports.Logger
	metrics  ports.Metrics
}

// NewSweeper creates a sweeper ticking every interval.
func NewSweeper(cache ports.CorrelationCache, interval time.Duration, logger ports.Logger, metrics ports.Metrics) *Sweeper {
	return &Sweeper{
		cache:    cache,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run sweeps on every tick until ctx is cancelled. It always returns nil.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	evicted := s.cache.Sweep()
	remaining := s.cache.Len()

	s.metrics.Swept(evicted)
	s.metrics.CacheEntries(remaining)
	if evicted > 0 {
		s.logger.Debug("correlation cache swept", "evicted", evicted, "remaining", remaining)
	}
}
