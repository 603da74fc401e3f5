package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"golang.org/x/time/rate"
)

const (
	DefaultMinSpacing   = 100 * time.Millisecond
	DefaultLowWaterMark = 5
)

type job struct {
	ctx  context.Context
	run  func(ctx context.Context)
	skip func(err error)
}

// RateLimiter serializes every outbound GitHub call through a single FIFO
// queue. Calls are dispatched one at a time, at least minSpacing apart, and
// the whole queue pauses until the reported reset instant once the remaining
// quota drops to the low-water mark.
type RateLimiter struct {
	mu       sync.Mutex
	queue    []*job
	draining bool

	known     bool
	remaining int
	limit     int
	reset     time.Time

	lowWater    int
	spacing     *rate.Limiter
	retryStatus int
}

func NewRateLimiter(minSpacing time.Duration, lowWater int) *RateLimiter {
	limit := rate.Inf
	if minSpacing > 0 {
		limit = rate.Every(minSpacing)
	}
	return &RateLimiter{
		lowWater:    lowWater,
		spacing:     rate.NewLimiter(limit, 1),
		retryStatus: http.StatusTooManyRequests,
	}
}

// Enqueue appends call to the limiter's queue and blocks until it has run,
// returning its outcome. A call whose context is already done when its turn
// comes is skipped; once started it always runs to completion.
func Enqueue[T any](ctx context.Context, r *RateLimiter, call func(ctx context.Context) (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)

	r.push(&job{
		ctx: ctx,
		run: func(ctx context.Context) {
			defer func() {
				if p := recover(); p != nil {
					done <- result{err: fmt.Errorf("queued call panicked: %v", p)}
				}
			}()
			v, err := call(ctx)
			done <- result{value: v, err: err}
		},
		skip: func(err error) {
			done <- result{err: err}
		},
	})

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (r *RateLimiter) push(j *job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queue = append(r.queue, j)
	if !r.draining {
		r.draining = true
		go r.drain()
	}
}

func (r *RateLimiter) drain() {
	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.draining = false
			r.mu.Unlock()
			return
		}
		j := r.queue[0]
		r.queue[0] = nil
		r.queue = r.queue[1:]
		r.mu.Unlock()

		if err := j.ctx.Err(); err != nil {
			j.skip(err)
			continue
		}

		if err := r.waitForReset(j.ctx); err != nil {
			j.skip(err)
			continue
		}

		if err := r.spacing.Wait(j.ctx); err != nil {
			j.skip(err)
			continue
		}

		j.run(j.ctx)
	}
}

func (r *RateLimiter) waitForReset(ctx context.Context) error {
	wait := r.pauseDuration()
	if wait <= 0 {
		return nil
	}

	logger.Warn("[RateLimiter] Rate limit almost exceeded. Waiting %v until reset.", wait)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RateLimiter) pauseDuration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.known || r.remaining > r.lowWater {
		return 0
	}
	return max(0, time.Until(r.reset))
}

// UpdateRateLimit records the latest quota snapshot reported by GitHub.
func (r *RateLimiter) UpdateRateLimit(remaining int, resetEpochSeconds int64, limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.known = true
	r.remaining = remaining
	r.reset = time.Unix(resetEpochSeconds, 0)
	r.limit = limit

	if remaining <= r.lowWater {
		logger.Warn("[RateLimiter] Low rate limit: %d remaining. Resets at %s", remaining, r.reset.Format(time.RFC1123))
	}
}

// UpdateFromHeaders feeds the X-RateLimit-* headers of a response into the
// limiter. Responses without a remaining count are ignored.
func (r *RateLimiter) UpdateFromHeaders(headers http.Header) {
	remaining, err := strconv.Atoi(headers.Get("X-RateLimit-Remaining"))
	if err != nil {
		return
	}

	reset, err := strconv.ParseInt(headers.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		reset = time.Now().Unix()
	}

	limit, err := strconv.Atoi(headers.Get("X-RateLimit-Limit"))
	if err != nil {
		limit = 5000
	}

	r.UpdateRateLimit(remaining, reset, limit)
}

// CanMakeRequest reports whether optional work should still be attempted.
// It is true until a snapshot at or below the low-water mark is known.
func (r *RateLimiter) CanMakeRequest() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return !r.known || r.remaining > r.lowWater
}

// Snapshot returns the last recorded quota, if any.
func (r *RateLimiter) Snapshot() (models.RateLimitSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.known {
		return models.RateLimitSnapshot{}, false
	}
	return models.RateLimitSnapshot{
		Limit:     r.limit,
		Remaining: r.remaining,
		Used:      max(0, r.limit-r.remaining),
		Reset:     r.reset.Unix(),
	}, true
}

// Pending is the number of calls waiting for their turn.
func (r *RateLimiter) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.queue)
}

// Middleware observes every real response's rate-limit headers and retries
// once on 429 after the advertised Retry-After.
func (r *RateLimiter) Middleware(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			logger.Error("Network error in RoundTrip: %v", err)
			return nil, err
		}

		r.UpdateFromHeaders(resp.Header)

		// * Retry on 429
		if resp.StatusCode == r.retryStatus {
			retryAfter := time.Second
			if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
				retryAfter = time.Duration(seconds) * time.Second
			}
			logger.Warn("[RateLimiter] Received 429. Retrying after %v...", retryAfter)
			resp.Body.Close()

			timer := time.NewTimer(retryAfter)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}

			resp, err = next.RoundTrip(req)
			if err != nil {
				return nil, err
			}
			r.UpdateFromHeaders(resp.Header)
		}

		return resp, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
