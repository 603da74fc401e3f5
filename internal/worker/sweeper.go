package worker

import (
	"context"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
)

type Sweeper interface {
	Cleanup() int
}

// CacheSweeper evicts expired cache entries on a fixed interval.
type CacheSweeper struct {
	cache    Sweeper
	interval time.Duration
}

func NewCacheSweeper(cache Sweeper, interval time.Duration) *CacheSweeper {
	return &CacheSweeper{
		cache:    cache,
		interval: interval,
	}
}

func (w *CacheSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := w.cache.Cleanup(); removed > 0 {
				logger.Debug("evicted %d expired cache entries", removed)
			}

		case <-ctx.Done():
			logger.Info("stopping cache sweeper")
			return
		}
	}
}
