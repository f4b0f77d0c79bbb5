package ports

import (
	"context"
	"time"
)

// Dataset kinds, used as cache key prefixes and metric labels. Each kind has
// its own TTL from configuration.
const (
	DatasetCalendar = "calendar"
	DatasetEvents   = "events"
	DatasetSquad    = "squad"
	DatasetInjuries = "injuries"
)

// Cache defines a minimal key-value cache contract.
// Implementations should degrade gracefully (returning an error without crashing callers)
// so that application logic can fall back to the upstream fetch.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 or negative means no expiration if supported).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// Clear drops every entry. Exposed so the serving context can reset the
	// cache on demand.
	Clear(ctx context.Context) error
}
