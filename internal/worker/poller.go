package worker

import (
	"context"
	"errors"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
)

type RateLimitFetcher interface {
	GetRateLimit(ctx context.Context) (*models.RateLimits, error)
}

// RateLimitPoller refreshes the known quota so CanMakeRequest stays accurate
// while no other traffic flows.
type RateLimitPoller struct {
	fetcher  RateLimitFetcher
	interval time.Duration
}

func NewRateLimitPoller(fetcher RateLimitFetcher, interval time.Duration) *RateLimitPoller {
	return &RateLimitPoller{
		fetcher:  fetcher,
		interval: interval,
	}
}

func (w *RateLimitPoller) Run(ctx context.Context) {
	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.poll(ctx)

		case <-ctx.Done():
			logger.Info("stopping rate limit poller")
			return
		}
	}
}

func (w *RateLimitPoller) poll(ctx context.Context) {
	limits, err := w.fetcher.GetRateLimit(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error("failed to refresh rate limit: %v", err)
		}
		return
	}

	core := limits.Core
	logger.Debug("rate limit %d/%d, resets at %s", core.Remaining, core.Limit, core.ResetTime().Format(time.RFC3339))
	if core.Limit > 0 && core.Remaining*10 < core.Limit {
		logger.Warn("GitHub quota below 10%%: %d of %d remaining", core.Remaining, core.Limit)
	}
}
