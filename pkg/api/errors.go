package api

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request body")
	ErrBatchTooLarge  = errors.New("too many values in batch")
	ErrRateLimited    = errors.New("rate limit exceeded")

	errTrailingData = errors.New("unexpected data after JSON value")
)
