package health

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/matchpulse/futsal-dashboard/internal/infrastructure/fifa"
)

// upstreamHealthChecker pings the FIFA data API.
type upstreamHealthChecker struct{ client *fifa.Client }

func (u *upstreamHealthChecker) Name() string                    { return "fifa_api" }
func (u *upstreamHealthChecker) Check(ctx context.Context) error { return u.client.Ping(ctx) }

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewUpstreamHealthChecker creates a health checker for the data API.
func NewUpstreamHealthChecker(client *fifa.Client) ports.HealthChecker {
	return &upstreamHealthChecker{client: client}
}

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}
