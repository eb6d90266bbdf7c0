package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
)

// SetHeaders writes the X-RateLimit-* headers for res, plus Retry-After
// (in whole seconds, rounded up) when the request was denied.
func SetHeaders(w http.ResponseWriter, res Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

	if !res.Allowed {
		secs := int(math.Ceil(res.RetryAfter().Seconds()))
		h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
	}
}
