package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache() (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func TestCache_TTL(t *testing.T) {
	c, clock := newTestCache()

	c.Set("repos:1", "payload", time.Second)

	v, ok := c.Get("repos:1")
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	clock.Advance(time.Second)
	assert.True(t, c.Has("repos:1"), "entry is still fresh exactly at its expiry instant")

	clock.Advance(time.Millisecond)
	v, ok = c.Get("repos:1")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, c.Has("repos:1"))
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted lazily")
}

func TestCache_DefaultTTL(t *testing.T) {
	c, clock := newTestCache()

	c.Set("k", 1, 0)
	clock.Advance(DefaultTTL)
	assert.True(t, c.Has("k"))

	clock.Advance(time.Millisecond)
	assert.False(t, c.Has("k"))

	custom := New(WithClock(clock.Now), WithDefaultTTL(time.Minute))
	custom.Set("k", 1, -1)
	clock.Advance(time.Minute + time.Millisecond)
	assert.False(t, custom.Has("k"))
}

func TestCache_Overwrite(t *testing.T) {
	c, _ := newTestCache()

	c.Set("k", "first", time.Minute)
	c.Set("k", "second", time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ClearAndCleanup(t *testing.T) {
	c, clock := newTestCache()

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)
	clock.Advance(2 * time.Second)

	assert.Equal(t, Stats{Total: 2, Valid: 1, Expired: 1}, c.Stats())
	assert.Equal(t, 1, c.Cleanup())
	assert.Equal(t, Stats{Total: 1, Valid: 1}, c.Stats())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("long"))
}

func TestLookup(t *testing.T) {
	c, _ := newTestCache()

	c.Set("contributor:highly-active:canonical/juju", true, PredicateTTL)
	c.Set("name", "juju", PredicateTTL)

	b, ok := Lookup[bool](c, "contributor:highly-active:canonical/juju")
	require.True(t, ok)
	assert.True(t, b)

	_, ok = Lookup[bool](c, "name")
	assert.False(t, ok, "type mismatch reads as a miss")

	_, ok = Lookup[bool](c, "missing")
	assert.False(t, ok)
}

func TestCache_Remember(t *testing.T) {
	t.Run("loads once and caches", func(t *testing.T) {
		c, _ := newTestCache()
		var calls int32

		load := func() (any, error) {
			atomic.AddInt32(&calls, 1)
			return 42, nil
		}

		v, err := c.Remember("answer", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = c.Remember("answer", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c, _ := newTestCache()
		boom := errors.New("boom")

		_, err := c.Remember("k", time.Minute, func() (any, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, c.Has("k"))
	})

	t.Run("concurrent callers share a load", func(t *testing.T) {
		c, _ := newTestCache()
		var calls int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.Remember("slow", time.Minute, func() (any, error) {
					atomic.AddInt32(&calls, 1)
					<-release
					return "done", nil
				})
				assert.NoError(t, err)
				assert.Equal(t, "done", v)
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
