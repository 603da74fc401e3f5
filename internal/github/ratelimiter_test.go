package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_FIFO(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)

	var (
		mu       sync.Mutex
		started  []string
		inFlight int32
		maxSeen  int32
	)

	call := func(name string, d time.Duration) func(context.Context) (string, error) {
		return func(ctx context.Context) (string, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}

			mu.Lock()
			started = append(started, name)
			mu.Unlock()

			time.Sleep(d)
			return name, nil
		}
	}

	delays := map[string]time.Duration{"A": 30 * time.Millisecond, "B": 5 * time.Millisecond, "C": 15 * time.Millisecond}

	var wg sync.WaitGroup
	results := make([]string, 3)
	for i, name := range []string{"A", "B", "C"} {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			v, err := Enqueue(context.Background(), rl, call(name, delays[name]))
			assert.NoError(t, err)
			results[i] = v
		}(i, name)
		// * make enqueue order deterministic
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, []string{"A", "B", "C"}, started)
	assert.Equal(t, []string{"A", "B", "C"}, results)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxSeen), "calls must never overlap")
	assert.Equal(t, 0, rl.Pending())
}

func TestRateLimiter_MinSpacing(t *testing.T) {
	rl := NewRateLimiter(50*time.Millisecond, DefaultLowWaterMark)

	var stamps []time.Time
	for range 3 {
		_, err := Enqueue(context.Background(), rl, func(ctx context.Context) (struct{}, error) {
			stamps = append(stamps, time.Now())
			return struct{}{}, nil
		})
		require.NoError(t, err)
	}

	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 45*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 45*time.Millisecond)
}

func TestRateLimiter_FailureDoesNotWedgeQueue(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)
	boom := errors.New("boom")

	_, err := Enqueue(context.Background(), rl, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = Enqueue(context.Background(), rl, func(ctx context.Context) (int, error) {
		panic("unexpected")
	})
	assert.Error(t, err)

	v, err := Enqueue(context.Background(), rl, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestRateLimiter_LowWaterPause(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)
	reset := time.Now().Add(2 * time.Second)
	rl.UpdateRateLimit(3, reset.Unix(), 5000)

	start := time.Now()
	var dispatched time.Time
	_, err := Enqueue(context.Background(), rl, func(ctx context.Context) (bool, error) {
		dispatched = time.Now()
		return true, nil
	})
	require.NoError(t, err)

	// * reset is truncated to whole seconds, so the pause lasts between one and two seconds
	assert.GreaterOrEqual(t, dispatched.Sub(start), time.Second)
	assert.False(t, dispatched.Before(time.Unix(reset.Unix(), 0)))
}

func TestRateLimiter_PauseHonoursContext(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)
	rl.UpdateRateLimit(0, time.Now().Add(time.Hour).Unix(), 5000)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	called := false
	_, err := Enqueue(ctx, rl, func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestRateLimiter_CanMakeRequest(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)
	assert.True(t, rl.CanMakeRequest(), "no snapshot recorded yet")

	_, known := rl.Snapshot()
	assert.False(t, known)

	reset := time.Now().Add(time.Minute).Unix()

	rl.UpdateRateLimit(6, reset, 60)
	assert.True(t, rl.CanMakeRequest())

	rl.UpdateRateLimit(5, reset, 60)
	assert.False(t, rl.CanMakeRequest())

	rl.UpdateRateLimit(0, reset, 60)
	assert.False(t, rl.CanMakeRequest())

	snap, known := rl.Snapshot()
	require.True(t, known)
	assert.Equal(t, 60, snap.Limit)
	assert.Equal(t, 0, snap.Remaining)
	assert.Equal(t, 60, snap.Used)
	assert.Equal(t, reset, snap.Reset)
}

func TestRateLimiter_UpdateFromHeaders(t *testing.T) {
	rl := NewRateLimiter(0, DefaultLowWaterMark)

	rl.UpdateFromHeaders(http.Header{})
	_, known := rl.Snapshot()
	assert.False(t, known, "responses without rate limit headers are ignored")

	h := http.Header{}
	h.Set("X-RateLimit-Remaining", "4")
	h.Set("X-RateLimit-Reset", "1700000000")
	h.Set("X-RateLimit-Limit", "60")
	rl.UpdateFromHeaders(h)

	snap, known := rl.Snapshot()
	require.True(t, known)
	assert.Equal(t, 4, snap.Remaining)
	assert.Equal(t, int64(1700000000), snap.Reset)
	assert.Equal(t, 60, snap.Limit)
	assert.False(t, rl.CanMakeRequest())
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("records headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
			w.Header().Set("X-RateLimit-Limit", "5000")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		rl := NewRateLimiter(0, DefaultLowWaterMark)
		client := &http.Client{Transport: rl.Middleware(http.DefaultTransport)}

		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()

		snap, known := rl.Snapshot()
		require.True(t, known)
		assert.Equal(t, 4999, snap.Remaining)
	})

	t.Run("retries once on 429", func(t *testing.T) {
		var requestCount int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&requestCount, 1) == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		rl := NewRateLimiter(0, DefaultLowWaterMark)
		client := &http.Client{Transport: rl.Middleware(http.DefaultTransport)}

		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&requestCount))
	})
}
