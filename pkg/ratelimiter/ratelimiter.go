package ratelimiter

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/numguard/pkg/validator"
)

// Bucket is a token bucket limiter over a Store.
type Bucket struct {
	store Store
	cfg   Config
}

func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Validate reports every non-positive field.
func (c Config) Validate() error {
	return validator.Apply(
		validator.MinNum("capacity", c.Capacity, 1),
		validator.MinNum("refill_rate", c.RefillRate, 1),
		validator.MinNum("refill_interval", c.RefillInterval.Nanoseconds(), 1),
	)
}

func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key. A request larger than the capacity can
// never succeed and is reported as ErrInvalidTokenCount.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 || n > b.cfg.Capacity {
		return Result{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTokenCount, n, b.cfg.Capacity)
	}

	remaining, resetAt, ok, err := b.store.Take(ctx, key, n, b.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Allowed:   ok,
		Limit:     b.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) Config() Config {
	return b.cfg
}
