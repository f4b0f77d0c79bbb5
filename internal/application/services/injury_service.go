package services

import (
	"context"
	"time"

	"github.com/matchpulse/futsal-dashboard/internal/core/domain/injury"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// InjuryService serves the injury dataset. When the primary source is
// unavailable it falls back to the bundled synthetic schedule; the fallback
// never fails, so injury charts always render.
type InjuryService struct {
	primary  ports.InjurySource
	fallback ports.InjurySource
	cache    ports.Cache
	ttl      time.Duration
	logger   *logrus.Logger
}

func NewInjuryService(primary, fallback ports.InjurySource, cache ports.Cache, ttl time.Duration, logger *logrus.Logger) ports.InjuryService {
	return &InjuryService{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetInjuries returns the cached injury records.
func (s *InjuryService) GetInjuries(ctx context.Context) ([]injury.Record, error) {
	return getOrFetch(ctx, s.cache, ports.DatasetInjuries, "all", s.ttl, func() ([]injury.Record, error) {
		return s.load(ctx)
	})
}

func (s *InjuryService) load(ctx context.Context) ([]injury.Record, error) {
	if s.primary != nil {
		records, err := s.primary.Load(ctx)
		if err == nil {
			return records, nil
		}
		if s.logger != nil {
			s.logger.WithError(err).Warn("injury dataset unavailable, using synthetic fallback")
		}
	}
	return s.fallback.Load(ctx)
}
