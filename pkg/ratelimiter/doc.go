// Package ratelimiter implements a token bucket limiter keyed by an
// arbitrary string, typically the client address.
//
// Requests may cost more than one token: the HTTP API charges a batch one
// token per value. A request that needs more tokens than the bucket holds
// is denied without consuming anything.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//
//	res, err := bucket.AllowN(ctx, ip, len(values))
//	if !res.Allowed {
//		// wait res.RetryAfter()
//	}
package ratelimiter
