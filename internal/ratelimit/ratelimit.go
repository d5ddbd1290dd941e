// Package ratelimit bounds accepted submissions per identity key to at most
// N within any trailing 60-second window (sliding, not fixed buckets).
package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const (
	// Window is the trailing window width. The janitor runs on the same
	// interval, so idle identities live at most two windows.
	Window = 60 * time.Second

	DefaultMaxPerWindow = 5
)

// Decision is the tagged outcome of a limiter check. RetryAfter is the
// number of seconds until a slot frees up, >= 1, set only on denial.
type Decision struct {
	Allowed    bool
	RetryAfter int
}

type Limiter interface {
	Check(ctx context.Context, key string) (Decision, error)
}

// MaxPerWindow parses the configured per-window maximum. A missing,
// unparsable, or non-positive value falls back to the default rather than
// disabling the limiter.
func MaxPerWindow(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultMaxPerWindow
	}
	return n
}
