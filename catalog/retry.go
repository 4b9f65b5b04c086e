package catalog

import (
	"context"
	"time"

	"github.com/fwojciec/coursecat"
)

// SearchFunc is the signature for a search function.
type SearchFunc func(ctx context.Context, q coursecat.SearchQuery) (*coursecat.SearchResponse, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for search retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// SearchWithRetry runs search, retrying failures after each of delays.
// A not-found result is final and returned without retrying.
func SearchWithRetry(ctx context.Context, q coursecat.SearchQuery, search SearchFunc, logger LogFunc, delays []time.Duration) (*coursecat.SearchResponse, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := search(ctx, q)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if coursecat.ErrorCode(err) == coursecat.ENOTFOUND {
			return nil, err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", q.Subject, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
