//go:build unit

package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(max int) (*MemoryLimiter, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewMemoryLimiter(max, clk), clk
}

func mustCheck(t *testing.T, l *MemoryLimiter, key string) Decision {
	t.Helper()
	d, err := l.Check(context.Background(), key)
	require.NoError(t, err)
	return d
}

func TestMemoryLimiter_Check(t *testing.T) {
	const key = "abc123"

	t.Run("allows up to max within a window, denies the next", func(t *testing.T) {
		l, _ := newTestLimiter(5)

		for i := 0; i < 5; i++ {
			d := mustCheck(t, l, key)
			assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		}

		d := mustCheck(t, l, key)
		assert.False(t, d.Allowed)
		assert.GreaterOrEqual(t, d.RetryAfter, 1)
	})

	t.Run("denial does not consume a slot", func(t *testing.T) {
		l, clk := newTestLimiter(2)

		mustCheck(t, l, key)
		mustCheck(t, l, key)
		for i := 0; i < 10; i++ {
			assert.False(t, mustCheck(t, l, key).Allowed)
		}

		// Both admitted entries expire together.
		clk.Add(Window)
		assert.True(t, mustCheck(t, l, key).Allowed)
	})

	t.Run("window slides instead of resetting in buckets", func(t *testing.T) {
		l, clk := newTestLimiter(3)

		mustCheck(t, l, key) // t=0
		clk.Add(20 * time.Second)
		mustCheck(t, l, key) // t=20s
		clk.Add(20 * time.Second)
		mustCheck(t, l, key) // t=40s

		d := mustCheck(t, l, key)
		require.False(t, d.Allowed)
		// Oldest entry (t=0) frees a slot at t=60s; we are at t=40s.
		assert.Equal(t, 20, d.RetryAfter)

		// Advancing by retryAfter admits exactly one more request.
		clk.Add(time.Duration(d.RetryAfter) * time.Second)
		assert.True(t, mustCheck(t, l, key).Allowed)
		assert.False(t, mustCheck(t, l, key).Allowed)
	})

	t.Run("retry-after is floored at one second", func(t *testing.T) {
		l, clk := newTestLimiter(1)

		mustCheck(t, l, key)
		clk.Add(Window - time.Millisecond)

		d := mustCheck(t, l, key)
		require.False(t, d.Allowed)
		assert.Equal(t, 1, d.RetryAfter)
	})

	t.Run("retry-after points at the oldest of the max most recent entries", func(t *testing.T) {
		l, clk := newTestLimiter(2)

		mustCheck(t, l, key) // t=0
		clk.Add(10 * time.Second)
		mustCheck(t, l, key) // t=10s
		clk.Add(10 * time.Second)

		// Both entries still live; the t=0 one expires first, at t=60s.
		d := mustCheck(t, l, key)
		require.False(t, d.Allowed)
		assert.Equal(t, 40, d.RetryAfter)
	})

	t.Run("distinct keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(1)

		assert.True(t, mustCheck(t, l, "key-a").Allowed)
		assert.False(t, mustCheck(t, l, "key-a").Allowed)
		assert.True(t, mustCheck(t, l, "key-b").Allowed)
	})

	t.Run("repeated denials never grow the stored sequence", func(t *testing.T) {
		l, _ := newTestLimiter(3)

		for i := 0; i < 3; i++ {
			mustCheck(t, l, key)
		}
		for i := 0; i < 20; i++ {
			mustCheck(t, l, key)
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.Len(t, l.entries[key], 3)
	})

	t.Run("non-positive max falls back to the default", func(t *testing.T) {
		l, _ := newTestLimiter(0)

		for i := 0; i < DefaultMaxPerWindow; i++ {
			assert.True(t, mustCheck(t, l, key).Allowed)
		}
		assert.False(t, mustCheck(t, l, key).Allowed)
	})
}

func TestMemoryLimiter_ConcurrentSameKey(t *testing.T) {
	const (
		key     = "contended"
		max     = 5
		workers = 64
	)
	l, _ := newTestLimiter(max)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Check(context.Background(), key)
			assert.NoError(t, err)
			if d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, max, allowed, "exactly max requests must win the race")
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	t.Run("removes idle identities and prunes live ones", func(t *testing.T) {
		l, clk := newTestLimiter(5)

		mustCheck(t, l, "idle")
		clk.Add(30 * time.Second)
		mustCheck(t, l, "active")
		clk.Add(31 * time.Second) // "idle" now expired, "active" still live

		l.sweep()

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.NotContains(t, l.entries, "idle")
		assert.Len(t, l.entries["active"], 1)
	})

	t.Run("sweep is idempotent", func(t *testing.T) {
		l, clk := newTestLimiter(5)

		mustCheck(t, l, "a")
		clk.Add(Window + time.Second)

		l.sweep()
		l.sweep()

		l.mu.Lock()
		defer l.mu.Unlock()
		assert.Empty(t, l.entries)
	})

	t.Run("sweep does not disturb concurrent checks", func(t *testing.T) {
		l, _ := newTestLimiter(3)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				key := fmt.Sprintf("key-%d", n%4)
				for j := 0; j < 50; j++ {
					_, err := l.Check(context.Background(), key)
					assert.NoError(t, err)
					l.sweep()
				}
			}(i)
		}
		wg.Wait()

		l.mu.Lock()
		defer l.mu.Unlock()
		for key, stamps := range l.entries {
			assert.LessOrEqual(t, len(stamps), 3, "key %s exceeds max", key)
		}
	})
}

func TestMemoryLimiter_Janitor(t *testing.T) {
	l, clk := newTestLimiter(5)
	mustCheck(t, l, "a")
	clk.Add(Window + time.Second)

	stop := l.StartJanitor()
	defer stop()

	// The janitor ticks on the window interval; trigger a sweep directly
	// instead of waiting a minute of wall time.
	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}

func TestMaxPerWindow(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "valid value", raw: "10", want: 10},
		{name: "surrounding whitespace", raw: " 7 ", want: 7},
		{name: "empty falls back", raw: "", want: DefaultMaxPerWindow},
		{name: "unparsable falls back", raw: "many", want: DefaultMaxPerWindow},
		{name: "zero falls back", raw: "0", want: DefaultMaxPerWindow},
		{name: "negative falls back", raw: "-3", want: DefaultMaxPerWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxPerWindow(tt.raw))
		})
	}
}
