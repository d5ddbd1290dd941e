package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/clock"
)

// MemoryLimiter keeps one ascending slice of request timestamps (Unix
// milliseconds) per identity key. All reads and writes of the table happen
// under a single mutex, so two simultaneous requests from the same identity
// can never both take the last free slot.
type MemoryLimiter struct {
	mu      sync.Mutex
	max     int
	clock   clock.Clock
	entries map[string][]int64
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(max int, clk clock.Clock) *MemoryLimiter {
	if max <= 0 {
		max = DefaultMaxPerWindow
	}
	return &MemoryLimiter{
		max:     max,
		clock:   clk,
		entries: make(map[string][]int64),
	}
}

func (l *MemoryLimiter) Check(_ context.Context, key string) (Decision, error) {
	now := l.clock.Now().UnixMilli()
	windowMs := Window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := pruneExpired(l.entries[key], now)

	if len(stamps) >= l.max {
		// The entry whose expiry next frees a slot is the oldest of the
		// max most recent ones.
		oldest := stamps[len(stamps)-l.max]
		retryAfter := ceilSeconds(oldest + windowMs - now)
		if retryAfter < 1 {
			retryAfter = 1
		}
		l.entries[key] = stamps
		return Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	l.entries[key] = append(stamps, now)
	return Decision{Allowed: true}, nil
}

// StartJanitor launches the periodic sweep that prunes expired timestamps and
// deletes idle identities, bounding the table to active clients. The returned
// stop function terminates the goroutine.
func (l *MemoryLimiter) StartJanitor() (stop func()) {
	ticker := time.NewTicker(Window)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func (l *MemoryLimiter) sweep() {
	now := l.clock.Now().UnixMilli()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, stamps := range l.entries {
		active := pruneExpired(stamps, now)
		if len(active) == 0 {
			delete(l.entries, key)
			continue
		}
		l.entries[key] = active
	}
}

// pruneExpired drops timestamps whose age is >= Window. Input and output are
// ascending, so a single scan from the front suffices.
func pruneExpired(stamps []int64, now int64) []int64 {
	cutoff := now - Window.Milliseconds()
	i := 0
	for i < len(stamps) && stamps[i] <= cutoff {
		i++
	}
	return stamps[i:]
}

func ceilSeconds(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int((ms + 999) / 1000)
}
