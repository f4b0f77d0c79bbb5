package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
)

// getOrFetch is the cache-aside core of the data layer. The key is
// kind:paramKey; a live entry is decoded and returned without touching the
// network, anything else invokes fetch and stores the result with a fresh
// timestamp. A failed fetch stores nothing and propagates unchanged.
//
// Two concurrent misses on one key may both fetch, last write wins; this
// layer makes no single-flight guarantee.
func getOrFetch[T any](ctx context.Context, c ports.Cache, kind, paramKey string, ttl time.Duration, fetch func() ([]T, error)) ([]T, error) {
	key := kind + ":" + paramKey

	if c != nil {
		if b, ok, err := c.Get(ctx, key); err == nil && ok {
			var out []T
			if err := json.Unmarshal(b, &out); err == nil {
				cacheHits.WithLabelValues(kind).Inc()
				return out, nil
			}
			// Undecodable entries are treated as misses and overwritten below.
			_ = c.Delete(ctx, key)
		}
	}
	cacheMisses.WithLabelValues(kind).Inc()

	out, err := fetch()
	if err != nil {
		return nil, err
	}

	if c != nil {
		if b, err := json.Marshal(out); err == nil {
			_ = c.Set(ctx, key, b, ttl)
		}
	}
	return out, nil
}
