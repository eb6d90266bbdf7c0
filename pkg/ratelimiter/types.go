package ratelimiter

import (
	"context"
	"time"
)

// Config describes a token bucket.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"200"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"20"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// Result is the outcome of one AllowN call.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int

	// ResetAt is when the next refill happens.
	ResetAt time.Time
}

// RetryAfter is how long to wait before retrying a denied request.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Store keeps bucket state.
type Store interface {
	// Take removes n tokens from the bucket for key when it holds at least
	// n, refilling it first. It reports the tokens left and whether the
	// tokens were taken.
	Take(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, ok bool, err error)
	Reset(ctx context.Context, key string) error
}
